package domain

// Editing metadata consumed by an admin form generator. Panel and field order
// is the form layout.

// PanelKind tells the form generator how to render a panel.
type PanelKind string

const (
	PanelField  PanelKind = "field"
	PanelMulti  PanelKind = "multi"
	PanelInline PanelKind = "inline"
)

// FieldPanel is one editable field. Lang is set for a single language of a
// localized field.
type FieldPanel struct {
	Field    string `json:"field"`
	Lang     string `json:"lang,omitempty"`
	Label    string `json:"label"`
	HelpText string `json:"helpText,omitempty"`
}

// Panel is a group of fields, or an inline editor for a child collection.
type Panel struct {
	Kind     PanelKind    `json:"kind"`
	Heading  string       `json:"heading,omitempty"`
	Fields   []FieldPanel `json:"fields,omitempty"`
	Relation string       `json:"relation,omitempty"`
}

// EntitySchema describes the editing form of one entity.
type EntitySchema struct {
	Entity            string   `json:"entity"`
	VerboseName       string   `json:"verboseName"`
	VerboseNamePlural string   `json:"verboseNamePlural,omitempty"`
	MaxCount          int      `json:"maxCount,omitempty"`
	Ordering          []string `json:"ordering,omitempty"`
	Panels            []Panel  `json:"panels"`
}

func field(name, label string) FieldPanel {
	return FieldPanel{Field: name, Label: label}
}

func localizedField(name, lang, label string) FieldPanel {
	return FieldPanel{Field: name, Lang: lang, Label: label}
}

func helped(f FieldPanel, help string) FieldPanel {
	f.HelpText = help
	return f
}

func flat(fields ...FieldPanel) []Panel {
	out := make([]Panel, 0, len(fields))
	for _, f := range fields {
		out = append(out, Panel{Kind: PanelField, Fields: []FieldPanel{f}})
	}
	return out
}

// HomePageSchema is the home page form: hero, about and contact sections,
// then one inline editor per child collection.
func HomePageSchema() EntitySchema {
	return EntitySchema{
		Entity:      "homepage",
		VerboseName: "Page d'accueil",
		MaxCount:    1,
		Panels: []Panel{
			{
				Kind:    PanelMulti,
				Heading: "Section Hero",
				Fields: []FieldPanel{
					localizedField("heroTitle", LangFR, "Titre Hero (FR)"),
					localizedField("heroTitle", LangEN, "Titre Hero (EN)"),
					localizedField("heroSubtitle", LangFR, "Sous-titre (FR)"),
					localizedField("heroSubtitle", LangEN, "Sous-titre (EN)"),
					localizedField("heroDescription", LangFR, "Description Hero (FR)"),
					localizedField("heroDescription", LangEN, "Description Hero (EN)"),
				},
			},
			{
				Kind:    PanelMulti,
				Heading: "Section À propos",
				Fields: []FieldPanel{
					localizedField("aboutTitle", LangFR, "Titre About (FR)"),
					localizedField("aboutTitle", LangEN, "Titre About (EN)"),
					localizedField("aboutText", LangFR, "Texte About (FR)"),
					localizedField("aboutText", LangEN, "Texte About (EN)"),
				},
			},
			{
				Kind:    PanelMulti,
				Heading: "Contact",
				Fields: []FieldPanel{
					field("email", "Email"),
					field("phone", "Phone"),
					field("location", "Location"),
					field("linkedinUrl", "Linkedin url"),
					field("githubUrl", "Github url"),
					field("cvDocumentFr", "CV PDF Français"),
					field("cvDocumentEn", "CV PDF English"),
				},
			},
			{Kind: PanelInline, Relation: "skills", Heading: "Compétences"},
			{Kind: PanelInline, Relation: "experiences", Heading: "Expériences"},
			{Kind: PanelInline, Relation: "projects", Heading: "Projets"},
			{Kind: PanelInline, Relation: "education", Heading: "Formation"},
		},
	}
}

func SkillSchema() EntitySchema {
	return EntitySchema{
		Entity:            "skill",
		VerboseName:       "Compétence",
		VerboseNamePlural: "Compétences",
		Ordering:          []string{"order", "name"},
		Panels: flat(
			field("name", "Name"),
			field("category", "Category"),
			helped(field("level", "Level"), "Niveau de compétence (0-100)"),
			field("order", "Order"),
		),
	}
}

func ExperienceSchema() EntitySchema {
	return EntitySchema{
		Entity:            "experience",
		VerboseName:       "Expérience",
		VerboseNamePlural: "Expériences",
		Ordering:          []string{"-order"},
		Panels: flat(
			helped(field("year", "Year"), "Ex: 2022 ou 2020-2021"),
			localizedField("title", LangFR, "Titre (FR)"),
			localizedField("title", LangEN, "Titre (EN)"),
			field("company", "Company"),
			localizedField("description", LangFR, "Description (FR)"),
			localizedField("description", LangEN, "Description (EN)"),
			field("order", "Order"),
		),
	}
}

func ProjectSchema() EntitySchema {
	return EntitySchema{
		Entity:            "project",
		VerboseName:       "Projet",
		VerboseNamePlural: "Projets",
		Ordering:          []string{"order"},
		Panels: flat(
			localizedField("title", LangFR, "Titre (FR)"),
			localizedField("title", LangEN, "Titre (EN)"),
			localizedField("description", LangFR, "Description (FR)"),
			localizedField("description", LangEN, "Description (EN)"),
			helped(field("technologies", "Technologies"), "Séparées par des virgules (ex: Python, Django, Wagtail)"),
			field("githubUrl", "Github url"),
			field("liveUrl", "Live url"),
			field("order", "Order"),
		),
	}
}

func EducationSchema() EntitySchema {
	return EntitySchema{
		Entity:            "education",
		VerboseName:       "Formation",
		VerboseNamePlural: "Formations",
		Ordering:          []string{"-order"},
		Panels: flat(
			field("year", "Year"),
			localizedField("title", LangFR, "Titre (FR)"),
			localizedField("title", LangEN, "Titre (EN)"),
			field("institution", "Institution"),
			field("description", "Description"),
			field("order", "Order"),
		),
	}
}

// Schemas returns every entity form, home page first.
func Schemas() []EntitySchema {
	return []EntitySchema{
		HomePageSchema(),
		SkillSchema(),
		ExperienceSchema(),
		ProjectSchema(),
		EducationSchema(),
	}
}
