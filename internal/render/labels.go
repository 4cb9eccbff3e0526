package render

import "github.com/statick88/statick88.github.io/internal/cv"

// Fixed UI strings of the one supported visual design, per output language.
var uiLabels = map[cv.Language]map[string]string{
	cv.LangES: {
		"contact":      "Contacto",
		"experience":   "Experiencia",
		"education":    "Educación",
		"projects":     "Cursos y Proyectos",
		"skills":       "Habilidades",
		"softskills":   "Habilidades Blandas",
		"languages":    "Idiomas",
		"publications": "Publicaciones",
		"demo":         "Demo",
		"source":       "Código",
	},
	cv.LangEN: {
		"contact":      "Contact",
		"experience":   "Experience",
		"education":    "Education",
		"projects":     "Trainings & Projects",
		"skills":       "Skills",
		"softskills":   "Soft Skills",
		"languages":    "Languages",
		"publications": "Publications",
		"demo":         "Demo",
		"source":       "Source",
	},
}

func label(lang cv.Language, key string) string {
	if s, ok := uiLabels[lang][key]; ok {
		return s
	}
	return uiLabels[cv.LangES][key]
}
