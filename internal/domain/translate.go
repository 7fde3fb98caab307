package domain

// coverageTranslations maps the English coverage labels of the source files
// to the Portuguese labels the dashboard displays. Unlisted values pass
// through unchanged.
var coverageTranslations = map[string]string{
	"Global":        "Global",
	"Regional":      "Regional",
	"National":      "Nacional",
	"Local":         "Local",
	"Continental":   "Continental",
	"Amazon":        "Amazônia",
	"Cerrado":       "Cerrado",
	"Brazil":        "Brasil",
	"South America": "América do Sul",
}

func TranslateCoverage(coverage string) string {
	if translated, ok := coverageTranslations[coverage]; ok {
		return translated
	}
	return coverage
}

var methodologyTranslations = map[string]string{
	"Machine Learning":            "Aprendizado de Máquina",
	"Deep Learning":               "Aprendizado Profundo",
	"Random Forest":               "Floresta Aleatória",
	"Neural Networks":             "Redes Neurais",
	"Supervised Classification":   "Classificação Supervisionada",
	"Unsupervised Classification": "Classificação Não Supervisionada",
	"Object-based":                "Baseada em Objetos",
	"Pixel-based":                 "Baseada em Pixels",
	"Time Series Analysis":        "Análise de Séries Temporais",
	"Spectral Analysis":           "Análise Espectral",
	"Visual Interpretation":       "Interpretação Visual",
	"Statistical Analysis":        "Análise Estatística",
	"Not Available":               "Não Disponível",
	"Unknown":                     "Desconhecido",
}

func TranslateMethodology(methodology string) string {
	if translated, ok := methodologyTranslations[methodology]; ok {
		return translated
	}
	return methodology
}
