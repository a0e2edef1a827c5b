package domain

import "time"

// HomePage is the portfolio landing page. At most one exists; it owns the
// skill, experience, project and education collections.
type HomePage struct {
	ID string `json:"id"`

	HeroTitle       Localized `json:"heroTitle" validate:"dive,keys,oneof=fr en,endkeys,max=255"`
	HeroSubtitle    Localized `json:"heroSubtitle" validate:"dive,keys,oneof=fr en,endkeys,max=100"`
	HeroDescription Localized `json:"heroDescription" validate:"dive,keys,oneof=fr en,endkeys,omitempty"`

	AboutTitle Localized `json:"aboutTitle" validate:"dive,keys,oneof=fr en,endkeys,max=100"`
	AboutText  Localized `json:"aboutText" validate:"dive,keys,oneof=fr en,endkeys,omitempty"`

	Email       string `json:"email" validate:"omitempty,email,max=254"`
	Phone       string `json:"phone" validate:"max=20"`
	Location    string `json:"location" validate:"max=100"`
	LinkedinURL string `json:"linkedinUrl" validate:"omitempty,http_url,max=200"`
	GithubURL   string `json:"githubUrl" validate:"omitempty,http_url,max=200"`

	CVDocumentFR *string `json:"cvDocumentFr" validate:"omitempty,uuid"`
	CVDocumentEN *string `json:"cvDocumentEn" validate:"omitempty,uuid"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultHomePage returns a page pre-filled with the stock hero and about titles.
func DefaultHomePage() HomePage {
	return HomePage{
		HeroTitle:       L("Développeuse Web & Spécialiste Customer Success", "Web Developer & Customer Success Specialist"),
		HeroSubtitle:    L("Bilingue Français | Anglais", "Bilingual French | English"),
		HeroDescription: Localized{},
		AboutTitle:      L("À propos", "About Me"),
		AboutText:       Localized{},
	}
}

// Validate checks field constraints.
func (p HomePage) Validate() error {
	return validateStruct(p)
}

// CVDocument returns the CV reference for lang, if any.
func (p HomePage) CVDocument(lang string) *string {
	if lang == LangEN {
		return p.CVDocumentEN
	}
	return p.CVDocumentFR
}

// Children groups the collections owned by a home page.
type Children struct {
	Skills      []Skill      `json:"skills"`
	Experiences []Experience `json:"experiences"`
	Projects    []Project    `json:"projects"`
	Education   []Education  `json:"education"`
}
