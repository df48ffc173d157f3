package logic

import "time"

// SetFetchTimeout changes the timeout of clients created from now on; call the returned func to restore it.
func SetFetchTimeout(d time.Duration) func() {
	old := fetchTimeout
	fetchTimeout = d
	return func() { fetchTimeout = old }
}
