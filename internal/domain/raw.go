package domain

// RawInitiative is the on-disk shape of one initiative entry in
// initiatives_metadata.jsonc. The files mix Portuguese and English keys, so
// both are decoded and the accessor methods pick whichever is present
// (English first). Numeric-ish fields arrive as strings, numbers or lists
// and stay untyped until the catalog parsers normalize them.
type RawInitiative struct {
	Sigla   string `json:"sigla"`
	Acronym string `json:"acronym"`

	Cobertura string `json:"cobertura"`
	Coverage  string `json:"coverage"`

	Provedor string `json:"provedor"`
	Provider string `json:"provider"`

	Fonte  string `json:"fonte"`
	Source string `json:"source"`

	SistemaReferencia string `json:"sistema_referencia"`
	ReferenceSystem   string `json:"reference_system"`

	ResolucaoEspacial interface{} `json:"resolucao_espacial"`
	SpatialResolution interface{} `json:"spatial_resolution"`

	AcuraciaGeral   interface{} `json:"acuracia_geral"`
	OverallAccuracy interface{} `json:"overall_accuracy"`

	QntClasses      interface{} `json:"qnt_classes"`
	QntClasses2     interface{} `json:"qnt_classes_2"`
	LegendaClasses  string      `json:"legenda_classes"`
	LegendaClasses2 string      `json:"legenda_classes_2"`

	Metodologia string `json:"metodologia"`
	Methodology string `json:"methodology"`

	MetodoClassificacao string `json:"metodo_classificacao"`

	FrequenciaTemporal string `json:"frequencia_temporal"`
	TemporalFrequency  string `json:"temporal_frequency"`

	FrequenciaAtualizacao string `json:"frequencia_atualizacao"`
	UpdateFrequency       string `json:"update_frequency"`

	IntervaloTemporal []interface{} `json:"intervalo_temporal"`
	AvailableYears    []interface{} `json:"available_years"`

	Sensors []string `json:"sensors,omitempty"`
}

func pick(en, pt string) string {
	if en != "" {
		return en
	}
	return pt
}

func pickAny(en, pt interface{}) interface{} {
	if en != nil {
		return en
	}
	return pt
}

func (r *RawInitiative) AcronymValue() string         { return pick(r.Acronym, r.Sigla) }
func (r *RawInitiative) CoverageValue() string        { return pick(r.Coverage, r.Cobertura) }
func (r *RawInitiative) ProviderValue() string        { return pick(r.Provider, r.Provedor) }
func (r *RawInitiative) SourceValue() string          { return pick(r.Source, r.Fonte) }
func (r *RawInitiative) ReferenceSystemValue() string { return pick(r.ReferenceSystem, r.SistemaReferencia) }
func (r *RawInitiative) MethodologyValue() string     { return pick(r.Methodology, r.Metodologia) }

func (r *RawInitiative) ResolutionValue() interface{} {
	return pickAny(r.SpatialResolution, r.ResolucaoEspacial)
}

func (r *RawInitiative) AccuracyValue() interface{} {
	return pickAny(r.OverallAccuracy, r.AcuraciaGeral)
}

func (r *RawInitiative) TemporalFrequencyValue() string {
	return pick(r.TemporalFrequency, r.FrequenciaTemporal)
}

func (r *RawInitiative) UpdateFrequencyValue() string {
	return pick(r.UpdateFrequency, r.FrequenciaAtualizacao)
}

func (r *RawInitiative) YearsValue() []interface{} {
	if len(r.AvailableYears) > 0 {
		return r.AvailableYears
	}
	return r.IntervaloTemporal
}

// RawSensor is one entry of sensors_metadata.jsonc, keyed by sensor key.
type RawSensor struct {
	DisplayName         string        `json:"display_name"`
	PlatformName        string        `json:"platform_name"`
	Agency              string        `json:"agency"`
	Status              string        `json:"status"`
	LaunchYear          int           `json:"launch_year"`
	SpatialResolutionsM []interface{} `json:"spatial_resolutions_m"`
	RevisitTimeDays     float64       `json:"revisit_time_days"`
	SpectralBands       int           `json:"spectral_bands"`
}

// SensorRecord is the normalized sensor entry served to the view layer.
type SensorRecord struct {
	Key                 string    `json:"key"`
	DisplayName         string    `json:"display_name"`
	PlatformName        string    `json:"platform_name"`
	Agency              string    `json:"agency,omitempty"`
	Status              string    `json:"status,omitempty"`
	LaunchYear          int       `json:"launch_year,omitempty"`
	SpatialResolutionsM []float64 `json:"spatial_resolutions_m"`
	RevisitTimeDays     float64   `json:"revisit_time_days,omitempty"`
	SpectralBands       int       `json:"spectral_bands,omitempty"`
}
