package display

import "fmt"

// QueuedAction is the kind of a deferred tag.
type QueuedAction uint8

const (
	QueuedPlace QueuedAction = iota
	QueuedRemove
)

// QueuedTag locates a PlaceObject or RemoveObject tag whose execution was
// deferred. Start and Length delimit the tag body in the clip's slice.
type QueuedTag struct {
	Action  QueuedAction
	Version uint8
	Start   int
	Length  int
}

// QueueState is the net pending effect at one depth.
type QueueState uint8

const (
	QueueNone QueueState = iota
	QueueAdd
	QueueRemove
	QueueRemoveThenAdd
)

// String returns a human-readable name for the state.
func (s QueueState) String() string {
	switch s {
	case QueueNone:
		return "None"
	case QueueAdd:
		return "Add"
	case QueueRemove:
		return "Remove"
	case QueueRemoveThenAdd:
		return "RemoveThenAdd"
	default:
		return fmt.Sprintf("QueueState(%d)", uint8(s))
	}
}

// QueuedTagList collapses the tags queued at one depth during a frame to
// their net effect. A remove followed by an add is kept as both, since
// it replaces the occupant rather than leaving it alone.
type QueuedTagList struct {
	state  QueueState
	remove QueuedTag
	add    QueuedTag
}

// State returns the pending effect.
func (q *QueuedTagList) State() QueueState { return q.state }

// QueueAdd records a placement. It returns false when an add is already
// pending; the earlier add is kept, as Flash Player does.
func (q *QueuedTagList) QueueAdd(tag QueuedTag) bool {
	switch q.state {
	case QueueNone:
		q.state, q.add = QueueAdd, tag
	case QueueAdd:
		return false
	case QueueRemove, QueueRemoveThenAdd:
		q.state, q.add = QueueRemoveThenAdd, tag
	}
	return true
}

// QueueRemove records a removal. A removal cancels a pending add.
func (q *QueuedTagList) QueueRemove(tag QueuedTag) {
	switch q.state {
	case QueueNone, QueueRemove:
		q.state, q.remove = QueueRemove, tag
	case QueueAdd:
		q.state = QueueNone
	case QueueRemoveThenAdd:
		q.state = QueueRemove
	}
	q.add = QueuedTag{}
}

// UnqueueAdd takes the pending add, if any, leaving a pending remove in
// place.
func (q *QueuedTagList) UnqueueAdd() (QueuedTag, bool) {
	switch q.state {
	case QueueAdd:
		tag := q.add
		*q = QueuedTagList{}
		return tag, true
	case QueueRemoveThenAdd:
		tag := q.add
		q.state, q.add = QueueRemove, QueuedTag{}
		return tag, true
	default:
		return QueuedTag{}, false
	}
}

// UnqueueRemove takes the pending remove, if any, leaving a pending add
// in place.
func (q *QueuedTagList) UnqueueRemove() (QueuedTag, bool) {
	switch q.state {
	case QueueRemove:
		tag := q.remove
		*q = QueuedTagList{}
		return tag, true
	case QueueRemoveThenAdd:
		tag := q.remove
		q.state, q.remove = QueueAdd, QueuedTag{}
		return tag, true
	default:
		return QueuedTag{}, false
	}
}
