package core

// State is the controller state. One current and one next state exist per
// cycle; the transition commits only on the clock edge, and only while
// the machine is enabled.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	// Startup scan: locate the separator and position the data pointer.
	ST_INIT       = State(0) // init
	ST_SCAN_FETCH = State(1) // scan_fetch
	ST_SCAN_STEP  = State(2) // scan_step
	ST_BEGIN      = State(3) // begin

	// Main fetch-decode loop.
	ST_FETCH  = State(4) // fetch
	ST_DECODE = State(5) // decode

	// Cell writeback for the add and sub commands.
	ST_ADD_WRITE = State(6) // add_write
	ST_SUB_WRITE = State(7) // sub_write

	// Busy-wait holds on the device handshakes.
	ST_OUT_WAIT = State(8) // out_wait
	ST_IN_WAIT  = State(9) // in_wait

	// While-loop start: test, then forward scan for the loop end.
	ST_LOOP_TEST  = State(10) // loop_test
	ST_SKIP_FETCH = State(11) // skip_fetch
	ST_SKIP_STEP  = State(12) // skip_step

	// While-loop end: test, then backward scan for the loop start.
	ST_END_TEST   = State(13) // end_test
	ST_BACK_START = State(14) // back_start
	ST_BACK_FETCH = State(15) // back_fetch
	ST_BACK_STEP  = State(16) // back_step

	// Terminal: only reset leaves it.
	ST_HALT = State(17) // halt
)
