// Package menu holds the open/closed state of the mobile navigation panel.
//
// Without JavaScript the state travels in the query string: the toggle button
// links back to the current page with ?menu=open, and every other link drops
// the parameter, so following any link closes the panel again.
package menu

import "net/url"

const QueryKey = "menu"

type State uint8

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}

	return "closed"
}

func (s State) IsOpen() bool {
	return s == Open
}

func (s *State) Toggle() {
	if *s == Open {
		*s = Closed
		return
	}

	*s = Open
}

// Reset closes the panel, as happens on navigation.
func (s *State) Reset() {
	*s = Closed
}

// FromQuery reads the state from request query values. Anything other than
// menu=open is Closed.
func FromQuery(q url.Values) State {
	if q.Get(QueryKey) == Open.String() {
		return Open
	}

	return Closed
}

// ToggleHref is the href of the toggle button rendered on path while in state s.
func (s State) ToggleHref(path string) string {
	next := s
	next.Toggle()

	if !next.IsOpen() {
		return path
	}

	return path + "?" + url.Values{QueryKey: {next.String()}}.Encode()
}
