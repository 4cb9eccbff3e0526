// Package cv provides the résumé data model consumed by the PDF rendering
// engine, including bilingual field resolution, date-range formatting and the
// language/fluency term translation table.
package cv

// Language identifies one of the two output variants a record can be
// rendered into.
type Language string

const (
	// LangES is the Spanish output variant.
	LangES Language = "es"
	// LangEN is the English output variant.
	LangEN Language = "en"
)

// Text is a bilingual string pair. Every free-text field of the record is
// authored in both languages; the renderer picks one via Resolve.
type Text struct {
	ES string `json:"es"`
	EN string `json:"en"`
}

// Resolve returns the value for the requested language, falling back to the
// Spanish value when the requested one is absent.
func (t Text) Resolve(lang Language) string {
	if lang == LangEN && t.EN != "" {
		return t.EN
	}
	return t.ES
}

// Profile is a social/professional network reference shown in the sidebar.
type Profile struct {
	Network string `json:"network"`
	URL     string `json:"url" validate:"omitempty,url"`
}

// Basics holds the identity block rendered into the sidebar and main header.
type Basics struct {
	Name     string    `json:"name" validate:"required"`
	Label    Text      `json:"label"`
	Summary  Text      `json:"summary"`
	Email    string    `json:"email" validate:"omitempty,email"`
	Phone    string    `json:"phone"`
	URL      string    `json:"url" validate:"omitempty,url"`
	Image    string    `json:"image"`
	Profiles []Profile `json:"profiles" validate:"dive"`
}

// Work is a single professional experience entry.
type Work struct {
	Name      string `json:"name"`
	Position  Text   `json:"position"`
	StartDate string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Summary   Text   `json:"summary"`
}

// Education is a single formal education entry.
type Education struct {
	Institution string `json:"institution"`
	Area        Text   `json:"area"`
	StartDate   string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// Project is a training or personal project entry with optional deploy and
// source-code links.
type Project struct {
	Name        string `json:"name"`
	Description Text   `json:"description"`
	URL         string `json:"url" validate:"omitempty,url"`
	Source      string `json:"source" validate:"omitempty,url"`
}

// Skill is a hard skill; levels are not rendered, only names.
type Skill struct {
	Name string `json:"name"`
}

// LanguageSkill is a spoken language with its fluency label. Both fields run
// through the term translation table before rendering.
type LanguageSkill struct {
	Language string `json:"language"`
	Fluency  string `json:"fluency"`
}

// Publication is a published article or book, rendered as a pair of links
// pointing at the same URL.
type Publication struct {
	Name        Text   `json:"name"`
	Publisher   string `json:"publisher"`
	ReleaseDate string `json:"releaseDate" validate:"omitempty,datetime=2006-01-02"`
	URL         string `json:"url" validate:"omitempty,url"`
}

// Record is the full CV document. It is read-only input for the renderer; a
// single Record may be rendered into both language variants concurrently.
type Record struct {
	Basics       Basics          `json:"basics"`
	Work         []Work          `json:"work" validate:"dive"`
	Education    []Education     `json:"education" validate:"dive"`
	Projects     []Project       `json:"projects" validate:"dive"`
	Skills       []Skill         `json:"skills" validate:"dive"`
	SoftSkills   []string        `json:"softSkills"`
	Languages    []LanguageSkill `json:"languages" validate:"dive"`
	Publications []Publication   `json:"publications" validate:"dive"`
}
