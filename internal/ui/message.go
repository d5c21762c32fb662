package ui

import "github.com/krishvsoni/suno/internal/player"

// stateMsg carries a controller snapshot into the program
type stateMsg player.Snapshot

// openedMsg reports the outcome of opening the browser
type openedMsg struct {
	url string
	err error
}

// Forward returns an OnChange callback that keeps only the newest snapshot
// in ch, so a slow program never blocks the controller.
func Forward(ch chan player.Snapshot) func(player.Snapshot) {
	return func(s player.Snapshot) {
		for {
			select {
			case ch <- s:
				return
			default:
			}
			select {
			case <-ch:
			default:
			}
		}
	}
}
