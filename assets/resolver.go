// Package assets turns storage keys into browser-loadable URLs.
package assets

import "strings"

// Buckets used by the showcase.
const (
	BucketProjectImages      = "project-images"
	BucketParticipantAvatars = "participant-avatars"
	BucketSponsorLogos       = "sponsor-logos"
	BucketProjectMedia       = "project-media"
	BucketParticipantMedia   = "participant-media"
	BucketSubmissions        = "submissions"
)

// Resolver builds public URLs for objects in named buckets. The zero value resolves
// bare keys to "/{bucket}/{key}" and empty keys to the empty string.
type Resolver struct {
	// BaseURL is the public object root, e.g. https://x.supabase.co/storage/v1/object/public.
	BaseURL string
	// Placeholders maps a bucket to the URL shown when an object has no path.
	Placeholders map[string]string
	// DefaultPlaceholder is used for buckets missing from Placeholders.
	DefaultPlaceholder string
	// LocalPrefixes are path prefixes already served by the site itself.
	LocalPrefixes []string
}

// DefaultLocalPrefixes are the site-relative prefixes left untouched by Resolve.
var DefaultLocalPrefixes = []string{"/images/"}

// New returns a Resolver with the default local prefixes.
func New(baseURL, placeholder string) Resolver {
	return Resolver{
		BaseURL:            strings.TrimRight(baseURL, "/"),
		DefaultPlaceholder: placeholder,
		LocalPrefixes:      DefaultLocalPrefixes,
	}
}

// Placeholder returns the fallback URL for bucket.
func (r Resolver) Placeholder(bucket string) string {
	if p, ok := r.Placeholders[bucket]; ok && p != "" {
		return p
	}
	return r.DefaultPlaceholder
}

// Resolve maps rawPath inside bucket to an absolute URL. It never fails: anything
// that cannot be resolved becomes the bucket placeholder.
func (r Resolver) Resolve(bucket, rawPath string) string {
	p := strings.TrimSpace(rawPath)
	if p == "" {
		return r.Placeholder(bucket)
	}
	if strings.HasPrefix(p, "http") {
		return p
	}
	for _, prefix := range r.LocalPrefixes {
		if prefix != "" && strings.HasPrefix(p, prefix) {
			return p
		}
	}
	if bucket != "" {
		if rest, ok := strings.CutPrefix(p, bucket+"/"); ok {
			return r.Resolve(bucket, rest)
		}
	}

	key := strings.TrimLeft(p, "/")
	if key == "" {
		return r.Placeholder(bucket)
	}
	base := strings.TrimRight(r.BaseURL, "/")
	if bucket == "" {
		return base + "/" + key
	}
	return base + "/" + bucket + "/" + key
}

// ResolveOptional resolves a nullable path.
func (r Resolver) ResolveOptional(bucket string, rawPath *string) string {
	if rawPath == nil {
		return r.Placeholder(bucket)
	}
	return r.Resolve(bucket, *rawPath)
}
