package models

// Display is the calculator screen as the UI sees it. The core fills it in
// after every event; the UI never computes any of it.
type Display struct {
	Expression   string // Visual expression being typed
	Result       string // Last result, fraction or error marker
	AngleMode    string // DEG, RAD or GRA
	Modifier     string // S, A or empty
	Mode         string // COMP, MATRIX, VECTOR, EQN or TABLE
	Hyperbolic   bool
	StorePending bool // STO pressed, waiting for a register key
}
