package topology

// Definition is implemented by application code to describe the topology
// it wants. Name supplies the resource name; Populate declares queues and
// topics on a freshly constructed empty resource using the builder methods.
//
// A Definition is consulted once per reconciliation run and must not hold
// references to the resource after Populate returns.
type Definition interface {
	Name() string
	Populate(r *Resource)
}

// Build constructs the resource a definition describes: a new empty
// resource named after the definition, passed through Populate.
func Build(def Definition) *Resource {
	r := NewResource(def.Name())
	def.Populate(r)
	return r
}
