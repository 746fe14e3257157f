package model

// AnimationScene is a snapshot of every animated attribute value at one
// instant of the timeline.
type AnimationScene struct {
	Time   float64                      `yaml:"time"`
	States map[string]map[string]string `yaml:"states"` // element id -> attribute -> value
}

// NewScene returns an empty scene at time t.
func NewScene(t float64) *AnimationScene {
	return &AnimationScene{Time: t, States: make(map[string]map[string]string)}
}

// SetProperty records one attribute value for an element.
func (s *AnimationScene) SetProperty(elementID, attribute, value string) {
	attrs, ok := s.States[elementID]
	if !ok {
		attrs = make(map[string]string)
		s.States[elementID] = attrs
	}
	attrs[attribute] = value
}

// Get returns the recorded value for an element attribute.
func (s *AnimationScene) Get(elementID, attribute string) (string, bool) {
	attrs, ok := s.States[elementID]
	if !ok {
		return "", false
	}
	v, ok := attrs[attribute]
	return v, ok
}

// Merge folds other into s; other wins on key collisions.
func (s *AnimationScene) Merge(other *AnimationScene) {
	if other == nil {
		return
	}
	for id, attrs := range other.States {
		for name, value := range attrs {
			s.SetProperty(id, name, value)
		}
	}
}

// Empty reports whether the scene carries no values.
func (s *AnimationScene) Empty() bool { return len(s.States) == 0 }
