package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	r := New("https://cdn.example.com/storage/v1/object/public/", "/placeholder.svg")
	r.Placeholders = map[string]string{BucketParticipantAvatars: "/images/avatar.svg"}

	tests := []struct {
		name   string
		bucket string
		raw    string
		want   string
	}{
		{"empty uses default placeholder", BucketProjectImages, "", "/placeholder.svg"},
		{"whitespace uses placeholder", BucketProjectImages, "   ", "/placeholder.svg"},
		{"bucket placeholder", BucketParticipantAvatars, "", "/images/avatar.svg"},
		{"absolute https unchanged", BucketProjectImages, "https://img.example.com/a.png", "https://img.example.com/a.png"},
		{"absolute http unchanged", BucketProjectImages, "http://img.example.com/a.png", "http://img.example.com/a.png"},
		{"local prefix unchanged", BucketProjectImages, "/images/hero.jpg", "/images/hero.jpg"},
		{"bucket prefix stripped", BucketProjectImages, "project-images/robot.png", "https://cdn.example.com/storage/v1/object/public/project-images/robot.png"},
		{"bucket prefix only", BucketProjectImages, "project-images/", "/placeholder.svg"},
		{"bare filename", BucketSponsorLogos, "logo.svg", "https://cdn.example.com/storage/v1/object/public/sponsor-logos/logo.svg"},
		{"nested key", BucketProjectMedia, "2024/clip.mp4", "https://cdn.example.com/storage/v1/object/public/project-media/2024/clip.mp4"},
		{"leading slash not local", BucketProjectMedia, "/clip.mp4", "https://cdn.example.com/storage/v1/object/public/project-media/clip.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.bucket, tt.raw))
		})
	}
}

func TestResolver_ZeroValue(t *testing.T) {
	var r Resolver
	assert.Equal(t, "", r.Resolve(BucketProjectImages, ""))
	assert.Equal(t, "/project-images/a.png", r.Resolve(BucketProjectImages, "a.png"))
}

func TestResolver_ResolveOptional(t *testing.T) {
	r := New("https://cdn.example.com", "/placeholder.svg")
	assert.Equal(t, "/placeholder.svg", r.ResolveOptional(BucketSponsorLogos, nil))
	path := "logo.png"
	assert.Equal(t, "https://cdn.example.com/sponsor-logos/logo.png", r.ResolveOptional(BucketSponsorLogos, &path))
}
