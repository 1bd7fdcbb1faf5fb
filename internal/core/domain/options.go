package domain

// Options is the mapping of option values passed down a resolution chain.
// An Options value is never mutated in place by the engine; merges allocate
// a fresh map so an override can not leak into a sibling branch or back into
// the ancestor that declared it.
type Options map[string]any

// Merge returns a new Options with override keys layered on top of o.
// Override keys win on conflict. Both inputs are left untouched; a nil
// receiver or nil override is treated as empty.
func (o Options) Merge(override Options) Options {
	merged := make(Options, len(o)+len(override))
	for k, v := range o {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// Clone returns a shallow copy of o. Cloning nil yields an empty map.
func (o Options) Clone() Options {
	return Options(nil).Merge(o)
}
