package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCardFenced = `---
collections:
- name: Inception v4
  paper:
    title: Inception-v4, Inception-ResNet and the Impact of Residual Connections on Learning
    url: https://arxiv.org/abs/1602.07261
models:
- name: inception_v4
  in_collection: Inception v4
  metadata:
    flops: 15806527936
    parameters: 42679816
    file_size: 171082495
    architecture:
    - Inception-C
    - Average Pooling
    training_techniques:
    - SGD with Momentum
    - Label Smoothing
    training_data:
    - ImageNet
    hyperparameters:
      image_size: 299
      crop_pct: 0.875
      interpolation: bicubic
  weights: https://github.com/rwightman/pytorch-image-models/releases/download/v0.1-weights/inception_v4-8e4777a0.pth
  results:
  - task: Image Classification
    dataset: ImageNet
    metrics:
      Top 1 Accuracy: 80.16
      Top 5 Accuracy: 94.97
---

# Inception v4

**Inception v4** deepens the Inception family with a more uniform
architecture and more inception modules.
`

const testCardComment = `<!--
collections:
- name: Inception v4
  paper:
    title: Inception-v4, Inception-ResNet and the Impact of Residual Connections on Learning
models:
- name: inception_resnet_v2
  in_collection: Inception v4
  metadata:
    parameters: 55843464
  results:
  - task: Image Classification
    dataset: ImageNet
    metrics:
      Top 1 Accuracy: 80.46
-->

Prose body.
`

func TestRegisterCardFencedFrontMatter(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterCard("cards/inception-v4.md", []byte(testCardFenced)))

	c, err := r.Collection("Inception v4")
	require.NoError(t, err)
	assert.Equal(t, "https://arxiv.org/abs/1602.07261", c.PaperURL)
	assert.Equal(t, []string{"inception_v4"}, c.Members)

	rec, err := r.Lookup("inception_v4")
	require.NoError(t, err)
	assert.Equal(t, int64(42679816), rec.Parameters)
	assert.Equal(t, "bicubic", rec.Hyperparameters["interpolation"])

	top1, ok := rec.Metric("Top 1 Accuracy")
	require.True(t, ok)
	assert.InDelta(t, 80.16, top1, 0.001)
}

func TestRegisterCardCommentFrontMatter(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterCard("cards/inception-resnet.md", []byte(testCardComment)))

	rec, err := r.Lookup("inception_resnet_v2")
	require.NoError(t, err)
	assert.Equal(t, int64(55843464), rec.Parameters)
}

func TestRegisterCardToleratesKnownCollection(t *testing.T) {
	r := New()
	require.NoError(t, r.AddCollection(Collection{Name: "Inception v4"}))

	// The card restates a collection already present.
	require.NoError(t, r.RegisterCard("cards/inception-v4.md", []byte(testCardFenced)))
	assert.Equal(t, 1, r.Len())
}

func TestRegisterCardWithoutFrontMatter(t *testing.T) {
	r := New()
	err := r.RegisterCard("cards/plain.md", []byte("# Just prose\n"))
	require.Error(t, err)
}

func TestFrontMatterExtraction(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		found bool
	}{
		{"fenced", "---\nkey: value\n---\nbody", "key: value", true},
		{"comment", "<!--\nkey: value\n-->\nbody", "key: value", true},
		{"leading blank lines", "\n\n---\nkey: value\n---\n", "key: value", true},
		{"unterminated fence", "---\nkey: value\n", "", false},
		{"no front matter", "# title\n", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := frontMatter([]byte(tt.in))
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.want, string(got))
			}
		})
	}
}
