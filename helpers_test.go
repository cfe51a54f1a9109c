package chatsignals

import "time"

// Test fixtures share one well-known base instant: 2024-03-04 10:00 UTC,
// a Monday mid-morning, safely outside the overnight windows.
var testBase = time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

func at(offset time.Duration) int64 {
	return testBase.Add(offset).UnixMilli()
}

func msg(sender string, ts int64, content string) Message {
	return Message{Sender: sender, Content: content, TimestampMs: ts, Type: MessageText}
}

// alternating builds a two-person conversation of n messages spaced step
// apart, senders alternating a, b, a, b...
func alternating(a, b string, n int, step time.Duration, content string) []Message {
	msgs := make([]Message, 0, n)
	for i := 0; i < n; i++ {
		sender := a
		if i%2 == 1 {
			sender = b
		}
		msgs = append(msgs, msg(sender, at(time.Duration(i)*step), content))
	}
	return msgs
}
