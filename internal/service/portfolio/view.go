package portfolio

// View is the public, single-language portfolio payload.
type View struct {
	Lang        string           `json:"lang"`
	Hero        HeroView         `json:"hero"`
	About       AboutView        `json:"about"`
	Contact     ContactView      `json:"contact"`
	Skills      []SkillView      `json:"skills"`
	Experiences []ExperienceView `json:"experiences"`
	Projects    []ProjectView    `json:"projects"`
	Education   []EducationView  `json:"education"`
}

type HeroView struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}

type AboutView struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type ContactView struct {
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	LinkedinURL string `json:"linkedinUrl,omitempty"`
	GithubURL   string `json:"githubUrl,omitempty"`
	CVURL       string `json:"cvUrl,omitempty"`
}

type SkillView struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	CategoryLabel string `json:"categoryLabel"`
	Level         int    `json:"level"`
}

type ExperienceView struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

type ProjectView struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty"`
}

type EducationView struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Description string `json:"description"`
}

func buildView(agg *Aggregate, lang string) *View {
	p := agg.Page
	v := &View{
		Lang: lang,
		Hero: HeroView{
			Title:       p.HeroTitle.Resolve(lang),
			Subtitle:    p.HeroSubtitle.Resolve(lang),
			Description: p.HeroDescription.Resolve(lang),
		},
		About: AboutView{
			Title: p.AboutTitle.Resolve(lang),
			Text:  p.AboutText.Resolve(lang),
		},
		Contact: ContactView{
			Email:       p.Email,
			Phone:       p.Phone,
			Location:    p.Location,
			LinkedinURL: p.LinkedinURL,
			GithubURL:   p.GithubURL,
		},
		Skills:      make([]SkillView, 0, len(agg.Children.Skills)),
		Experiences: make([]ExperienceView, 0, len(agg.Children.Experiences)),
		Projects:    make([]ProjectView, 0, len(agg.Children.Projects)),
		Education:   make([]EducationView, 0, len(agg.Children.Education)),
	}
	for _, s := range agg.Children.Skills {
		v.Skills = append(v.Skills, SkillView{
			Name:          s.Name,
			Category:      string(s.Category),
			CategoryLabel: s.Category.Label(),
			Level:         s.Level,
		})
	}
	for _, e := range agg.Children.Experiences {
		v.Experiences = append(v.Experiences, ExperienceView{
			Year:        e.Year,
			Title:       e.Title.Resolve(lang),
			Company:     e.Company,
			Description: e.Description.Resolve(lang),
		})
	}
	for _, pr := range agg.Children.Projects {
		techs := pr.TechnologyList()
		if techs == nil {
			techs = []string{}
		}
		v.Projects = append(v.Projects, ProjectView{
			Title:        pr.Title.Resolve(lang),
			Description:  pr.Description.Resolve(lang),
			Technologies: techs,
			GithubURL:    pr.GithubURL,
			LiveURL:      pr.LiveURL,
		})
	}
	for _, e := range agg.Children.Education {
		v.Education = append(v.Education, EducationView{
			Year:        e.Year,
			Title:       e.Title.Resolve(lang),
			Institution: e.Institution,
			Description: e.Description,
		})
	}
	return v
}
