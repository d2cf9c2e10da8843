// Package validation holds the per-entity input validators. Each validator
// returns field-level errors so the presentation adapter can re-render the
// offending form fields.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"quill/internal/models"
)

// MaxCommentLen bounds comment text length in characters.
const MaxCommentLen = 500

// imageRefRegex matches the opaque references the media collaborator hands
// out for stored images: a path under posts/ with an image extension.
var imageRefRegex = regexp.MustCompile(`^posts/[A-Za-z0-9._-]+\.(jpe?g|png|gif|webp)$`)

// PostInput is the mutable part of a post, shared by create and edit forms.
type PostInput struct {
	Text      string `json:"text"`
	ImageRef  string `json:"image_ref"`
	GroupSlug string `json:"group_slug"`
}

// CommentInput is the comment creation form.
type CommentInput struct {
	Text string `json:"text"`
}

// ValidatePost checks a post create or edit form.
func ValidatePost(in PostInput) []models.FieldError {
	var errs []models.FieldError

	if strings.TrimSpace(in.Text) == "" {
		errs = append(errs, models.FieldError{Field: "text", Message: "text is required"})
	}
	if in.ImageRef != "" && !imageRefRegex.MatchString(in.ImageRef) {
		errs = append(errs, models.FieldError{Field: "image_ref", Message: "not a stored image reference"})
	}

	return errs
}

// ValidateComment checks a comment creation form.
func ValidateComment(in CommentInput) []models.FieldError {
	var errs []models.FieldError

	if strings.TrimSpace(in.Text) == "" {
		errs = append(errs, models.FieldError{Field: "text", Message: "text is required"})
	}
	if utf8.RuneCountInString(in.Text) > MaxCommentLen {
		errs = append(errs, models.FieldError{
			Field:   "text",
			Message: fmt.Sprintf("text must be at most %d characters", MaxCommentLen),
		})
	}

	return errs
}
