// Package hit defines the unit of tracking data shared by the queue,
// planner and dispatcher.
package hit

// Hit is one trackable event as a flat parameter map, keyed by
// wire-protocol parameter name once translated. A Hit placed on the queue
// is never mutated afterwards.
type Hit map[string]string

// Merge returns a new Hit combining the layers in order; later layers
// override earlier ones on key collision. Nil layers are skipped.
func Merge(layers ...map[string]string) Hit {
	out := make(Hit)
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}
