package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Allow letters, numbers, spaces, and common professional punctuation: . ' - / & ( ) ,
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)

	// Skill tags like "Go", "C++", "C#", ".NET", "Node.js"
	skillRegex = regexp.MustCompile(`^[\p{L}0-9 .#+/-]{1,50}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("skill_tag", SkillTag)
}

// ValidName validates that a string contains only valid name characters.
// Rejects most special symbols.
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// SkillTag validates a single skill tag.
func SkillTag(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return false
	}
	return skillRegex.MatchString(val)
}
