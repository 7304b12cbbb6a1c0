package submissions

import (
	"io"
	"net/mail"
	"regexp"
	"slices"
	"strings"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
)

// DefaultLanguage is used when a submitter leaves the preference blank.
const DefaultLanguage = "sv"

// Request is a submission as sent by the public form.
type Request struct {
	Type                  models.SubmissionType `json:"type"`
	Title                 string                `json:"title"`
	Content               map[string]any        `json:"content"`
	SubmittedBy           string                `json:"submittedBy"`
	ContactEmail          string                `json:"contactEmail"`
	ContactPhone          string                `json:"contactPhone"`
	Location              string                `json:"location"`
	LanguagePreference    string                `json:"languagePreference"`
	HowFoundUs            string                `json:"howFoundUs"`
	PublicationPermission bool                  `json:"publicationPermission"`
	SessionID             string                `json:"sessionId"`
	DeviceFingerprint     string                `json:"deviceFingerprint"`

	Files []File `json:"-"`
}

// File is one attachment streamed from the form.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Limits bound the attachments of one submission.
type Limits struct {
	MaxFileBytes int64
	MaxFiles     int
}

// DefaultLimits allow ten files of at most 50 MiB each.
var DefaultLimits = Limits{MaxFileBytes: 50 << 20, MaxFiles: 10}

func (r *Request) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.SubmittedBy = strings.TrimSpace(r.SubmittedBy)
	r.ContactEmail = strings.TrimSpace(r.ContactEmail)
	r.ContactPhone = strings.TrimSpace(r.ContactPhone)
	r.Location = strings.TrimSpace(r.Location)
	r.HowFoundUs = strings.TrimSpace(r.HowFoundUs)
	r.LanguagePreference = strings.TrimSpace(r.LanguagePreference)
	if r.LanguagePreference == "" {
		r.LanguagePreference = DefaultLanguage
	}
	if r.Content == nil {
		r.Content = map[string]any{}
	}
}

// Validate normalizes r in place and reports the first invalid field.
func (r *Request) Validate(limits Limits) error {
	r.normalize()
	if r.Type == "" {
		return errs.NewMissingRequiredFieldError("type")
	}
	if !slices.Contains(models.SubmissionTypes, r.Type) {
		return errs.NewInvalidFieldError("type", "unknown submission type "+string(r.Type))
	}
	if r.Title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if r.SubmittedBy == "" {
		return errs.NewMissingRequiredFieldError("submittedBy")
	}
	if r.ContactEmail == "" {
		return errs.NewMissingRequiredFieldError("contactEmail")
	}
	if addr, err := mail.ParseAddress(r.ContactEmail); err != nil || addr.Address != r.ContactEmail {
		return errs.NewInvalidFieldError("contactEmail", "not a valid email address")
	}
	if limits.MaxFiles > 0 && len(r.Files) > limits.MaxFiles {
		return errs.NewInvalidFieldError("files", "too many files")
	}
	for _, f := range r.Files {
		if f.Body == nil {
			return errs.NewInvalidFieldError("files", "empty file "+f.Name)
		}
		if limits.MaxFileBytes > 0 && f.Size > limits.MaxFileBytes {
			return errs.NewMaxBodySizeExceededError(limits.MaxFileBytes)
		}
	}
	return nil
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFileName keeps a storage-safe version of a user supplied name.
func SanitizeFileName(name string) string {
	name = name[strings.LastIndexAny(name, `/\`)+1:]
	name = strings.Trim(unsafeFileChars.ReplaceAllString(name, "_"), "_.")
	if name == "" {
		return "file"
	}
	return name
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
