package service

import "github.com/tidwall/gjson"

// payloadOf returns the event JSON carried by a queue message. Sync-fed
// queues wrap the snapshot in an envelope under record.data; bare payloads
// pass through unchanged.
func payloadOf(body string) string {
	if record := gjson.Get(body, "record.data"); record.Exists() {
		return record.Raw
	}
	return body
}
