package dashboard

// DisplayState is the single visible UI state of the dashboard. Exactly one
// value holds at a time.
type DisplayState string

const (
	// StateLoading is shown while a search or fetch is in flight. It is also
	// the initial state, entered by the automatic default-location load.
	StateLoading DisplayState = "loading"

	// StateContent shows the rendered weather panels.
	StateContent DisplayState = "content"

	// StateNoResults is entered when a search resolves to zero places. The
	// search field is cleared so the user can try another query.
	StateNoResults DisplayState = "no-results"

	// StateError is entered on any transport or parse failure and offers a
	// retry affordance.
	StateError DisplayState = "error"
)

// Renderer is the surface the orchestrator paints into. Implementations
// receive display-ready records only, never raw payloads.
type Renderer interface {
	ShowLoading()
	ShowContent(view View)
	ShowNoResults()
	ShowError()
}
