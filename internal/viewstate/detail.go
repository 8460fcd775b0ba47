package viewstate

import "github.com/ikari-pl/go-swapi-browser/internal/catalog"

// Request identifies one detail lookup.
type Request struct {
	Key catalog.Key
	seq uint64
}

// Detail tracks the single entity shown by the details view.
type Detail struct {
	status Status
	key    catalog.Key
	entity *catalog.Entity
	err    error
	seq    uint64
}

// NewDetail creates an idle detail view-state.
func NewDetail() *Detail {
	return &Detail{status: StatusIdle}
}

// Begin starts a lookup for key, superseding any lookup still in flight.
func (d *Detail) Begin(key catalog.Key) Request {
	d.seq++
	d.status = StatusLoading
	d.key = key
	d.entity = nil
	d.err = nil
	return Request{Key: key, seq: d.seq}
}

// Resolve applies the outcome of req: an error means Failed, a nil entity means
// NotFound, anything else Found. It returns false for superseded requests.
func (d *Detail) Resolve(req Request, entity *catalog.Entity, err error) bool {
	if req.seq != d.seq || d.status != StatusLoading {
		return false
	}
	switch {
	case err != nil:
		d.status = StatusFailed
		d.err = err
	case entity == nil:
		d.status = StatusNotFound
	default:
		e := *entity
		d.entity = &e
		d.status = StatusFound
	}
	return true
}

// ResolveFrom resolves req against the in-memory collection.
func (d *Detail) ResolveFrom(req Request, c *Collection) bool {
	if e, ok := c.Lookup(req.Key); ok {
		return d.Resolve(req, &e, nil)
	}
	return d.Resolve(req, nil, nil)
}

// Reset returns to Idle and invalidates outstanding requests.
func (d *Detail) Reset() {
	d.seq++
	d.status = StatusIdle
	d.entity = nil
	d.err = nil
}

// Status returns the current lifecycle state.
func (d *Detail) Status() Status { return d.status }

// Key returns the key of the most recent lookup.
func (d *Detail) Key() catalog.Key { return d.key }

// Entity returns the found entity, or nil unless Status is Found.
func (d *Detail) Entity() *catalog.Entity { return d.entity }

// Err returns the failure of the last lookup.
func (d *Detail) Err() error { return d.err }
