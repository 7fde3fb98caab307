package catalog

import "strings"

// Provider category labels.
const (
	ProviderSpaceAgency = "Space Agency"
	ProviderUniversity  = "University"
	ProviderTechCompany = "Tech Company"
	ProviderGovernment  = "Government"
	ProviderNGO         = "NGO"
	ProviderOther       = "Other"
)

// Method category labels.
const (
	MethodDeepLearning         = "Deep Learning"
	MethodMachineLearning      = "Machine Learning"
	MethodVisualInterpretation = "Visual Interpretation"
	MethodStatistical          = "Statistical Methods"
	MethodCombined             = "Combined"
)

// keywordRule pairs a label with the lowercased substrings that select it.
// Rules are evaluated in order, first match wins.
type keywordRule struct {
	label    string
	keywords []string
}

var providerRules = []keywordRule{
	{ProviderSpaceAgency, []string{"space", "esa", "copernicus", "nasa", "inpe"}},
	{ProviderUniversity, []string{"university", "umd", "maryland"}},
	{ProviderTechCompany, []string{"google", "microsoft", "esri"}},
	{ProviderGovernment, []string{"government", "institute", "ibge", "conab", "embrapa"}},
	{ProviderNGO, []string{"ngo", "organization"}},
}

var methodRules = []keywordRule{
	{MethodDeepLearning, []string{"deep learning", "neural network", "cnn", "u-net"}},
	{MethodMachineLearning, []string{"machine learning", "random forest", "gradient boost", "catboost"}},
	{MethodVisualInterpretation, []string{"visual interpretation", "visual"}},
	{MethodStatistical, []string{"statistical", "regression", "decision tree"}},
}

func classify(text string, rules []keywordRule, fallback string) string {
	lowered := strings.ToLower(text)
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.label
			}
		}
	}
	return fallback
}

// CategorizeProvider buckets a provider name by keyword matching.
func CategorizeProvider(provider string) string {
	return classify(provider, providerRules, ProviderOther)
}

// CategorizeMethod buckets a classification-method description by its
// technology level.
func CategorizeMethod(method string) string {
	return classify(method, methodRules, MethodCombined)
}

// Resolution category labels, by fixed thresholds in meters.
const (
	ResolutionVeryHigh = "Very High"
	ResolutionHigh     = "High"
	ResolutionMedium   = "Medium"
	ResolutionLow      = "Low"
)

func CategorizeResolution(resolutionM float64) string {
	switch {
	case resolutionM <= 10:
		return ResolutionVeryHigh
	case resolutionM <= 30:
		return ResolutionHigh
	case resolutionM <= 100:
		return ResolutionMedium
	default:
		return ResolutionLow
	}
}

// Accuracy category labels, by fixed thresholds in percent.
const (
	AccuracyExcellent = "Excellent"
	AccuracyGood      = "Good"
	AccuracyRegular   = "Regular"
	AccuracyLow       = "Low"
)

func CategorizeAccuracy(accuracyPct float64) string {
	switch {
	case accuracyPct >= 90:
		return AccuracyExcellent
	case accuracyPct >= 80:
		return AccuracyGood
	case accuracyPct >= 70:
		return AccuracyRegular
	default:
		return AccuracyLow
	}
}
