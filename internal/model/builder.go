package model

// Builder assembles an AnimationDefinition fluently. Each step takes and
// returns the builder by value, so partially built states never alias.
type Builder struct {
	def AnimationDefinition
}

// NewBuilder starts a definition for one element attribute.
func NewBuilder(elementID, attribute string) Builder {
	return Builder{def: AnimationDefinition{
		ElementID:       elementID,
		TargetAttribute: attribute,
		Timing:          NewTiming(0, 0),
	}}
}

func (b Builder) Type(t AnimationType) Builder {
	b.def.Type = t
	return b
}

func (b Builder) Values(values []string) Builder {
	b.def.Values = values
	return b
}

func (b Builder) Timing(t AnimationTiming) Builder {
	b.def.Timing = t
	return b
}

func (b Builder) KeyTimes(kt []float64) Builder {
	b.def.KeyTimes = kt
	return b
}

func (b Builder) KeySplines(ks []Spline) Builder {
	b.def.KeySplines = ks
	return b
}

func (b Builder) CalcMode(m CalcMode) Builder {
	b.def.CalcMode = m
	return b
}

func (b Builder) Transform(t TransformType) Builder {
	b.def.Transform = &t
	return b
}

func (b Builder) Additive(m AdditiveMode) Builder {
	b.def.Additive = m
	return b
}

func (b Builder) Accumulate(m AccumulateMode) Builder {
	b.def.Accumulate = m
	return b
}

// Build validates and returns the definition.
func (b Builder) Build() (AnimationDefinition, error) {
	return NewDefinition(b.def)
}
