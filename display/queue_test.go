package display

import "testing"

func TestQueuedTagList_Transitions(t *testing.T) {
	add1 := QueuedTag{Action: QueuedPlace, Start: 10}
	add2 := QueuedTag{Action: QueuedPlace, Start: 20}
	rem1 := QueuedTag{Action: QueuedRemove, Start: 30}
	rem2 := QueuedTag{Action: QueuedRemove, Start: 40}

	tests := []struct {
		name       string
		ops        func(q *QueuedTagList)
		want       QueueState
		wantAdd    *QueuedTag
		wantRemove *QueuedTag
	}{
		{"none", func(*QueuedTagList) {}, QueueNone, nil, nil},
		{"add", func(q *QueuedTagList) { q.QueueAdd(add1) }, QueueAdd, &add1, nil},
		{"add add keeps first", func(q *QueuedTagList) { q.QueueAdd(add1); q.QueueAdd(add2) }, QueueAdd, &add1, nil},
		{"add remove cancels", func(q *QueuedTagList) { q.QueueAdd(add1); q.QueueRemove(rem1) }, QueueNone, nil, nil},
		{"remove", func(q *QueuedTagList) { q.QueueRemove(rem1) }, QueueRemove, nil, &rem1},
		{"remove remove keeps last", func(q *QueuedTagList) { q.QueueRemove(rem1); q.QueueRemove(rem2) }, QueueRemove, nil, &rem2},
		{"remove add", func(q *QueuedTagList) { q.QueueRemove(rem1); q.QueueAdd(add1) }, QueueRemoveThenAdd, &add1, &rem1},
		{"remove add add replaces add", func(q *QueuedTagList) {
			q.QueueRemove(rem1)
			q.QueueAdd(add1)
			q.QueueAdd(add2)
		}, QueueRemoveThenAdd, &add2, &rem1},
		{"remove add remove keeps first remove", func(q *QueuedTagList) {
			q.QueueRemove(rem1)
			q.QueueAdd(add1)
			q.QueueRemove(rem2)
		}, QueueRemove, nil, &rem1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q QueuedTagList
			tt.ops(&q)
			if q.State() != tt.want {
				t.Fatalf("State() = %v, want %v", q.State(), tt.want)
			}

			// Drain a copy removes first, the order the timeline uses.
			drain := q
			rem, ok := drain.UnqueueRemove()
			if ok != (tt.wantRemove != nil) || (ok && rem != *tt.wantRemove) {
				t.Errorf("UnqueueRemove() = %+v, %v, want %+v", rem, ok, tt.wantRemove)
			}
			add, ok := drain.UnqueueAdd()
			if ok != (tt.wantAdd != nil) || (ok && add != *tt.wantAdd) {
				t.Errorf("UnqueueAdd() = %+v, %v, want %+v", add, ok, tt.wantAdd)
			}
			if drain.State() != QueueNone {
				t.Errorf("State() after draining = %v, want None", drain.State())
			}
		})
	}
}

func TestQueuedTagList_UnqueueLeavesOtherHalf(t *testing.T) {
	var q QueuedTagList
	q.QueueRemove(QueuedTag{Action: QueuedRemove, Start: 1})
	q.QueueAdd(QueuedTag{Action: QueuedPlace, Start: 2})

	if _, ok := q.UnqueueAdd(); !ok {
		t.Fatal("UnqueueAdd() = false")
	}
	if q.State() != QueueRemove {
		t.Errorf("State() = %v, want Remove", q.State())
	}

	q = QueuedTagList{}
	q.QueueRemove(QueuedTag{Action: QueuedRemove, Start: 1})
	q.QueueAdd(QueuedTag{Action: QueuedPlace, Start: 2})
	if _, ok := q.UnqueueRemove(); !ok {
		t.Fatal("UnqueueRemove() = false")
	}
	if q.State() != QueueAdd {
		t.Errorf("State() = %v, want Add", q.State())
	}
	if _, ok := q.UnqueueRemove(); ok {
		t.Error("second UnqueueRemove() = true")
	}
}

func TestQueuedTagList_AddCollision(t *testing.T) {
	var q QueuedTagList
	if !q.QueueAdd(QueuedTag{Start: 1}) {
		t.Fatal("first QueueAdd() = false")
	}
	if q.QueueAdd(QueuedTag{Start: 2}) {
		t.Error("second QueueAdd() = true, want false")
	}
}
