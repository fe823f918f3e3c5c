package schedule

// Well-known stage names. Stages run strictly in first-registration order,
// so an application (or its plugins) that wants the conventional frame shape
// should register at least one system into each of these, in this order,
// before any custom stages. Nothing requires their use; any string is a
// valid stage name.
const (
	// StageFirst runs before everything else each frame (timekeeping, input).
	StageFirst = "first"

	// StagePreUpdate runs before the main update stage (event pumping, staging).
	StagePreUpdate = "pre_update"

	// StageUpdate is the default stage for game and application logic.
	StageUpdate = "update"

	// StagePostUpdate runs after the main update stage (derived state, cleanup).
	StagePostUpdate = "post_update"

	// StageRender prepares render state before the renderer walks the graph.
	StageRender = "render"

	// StageLast runs after everything else each frame.
	StageLast = "last"
)
