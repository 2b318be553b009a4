// Package sms provides the outbound SMS gateway and message templates
// for barangay-wide announcements.
package sms

import (
	entsmsmessage "kolekta.io/kolekta/ent/smsmessage"
)

// MaxBodyLength is the single-segment SMS limit enforced on outbound
// messages.
const MaxBodyLength = 160

// templates maps a message type to its pre-filled body. Custom messages
// have no template; the official writes the text.
var templates = map[entsmsmessage.MessageType]string{
	entsmsmessage.MessageTypeCustom:     "",
	entsmsmessage.MessageTypeCollection: "Reminder: Waste collection will happen today. Please place your garbage outside before 6:00 AM.",
	entsmsmessage.MessageTypeDelay:      "Notice: Waste collection is delayed due to unforeseen circumstances. We apologize for the inconvenience.",
	entsmsmessage.MessageTypeEducation:  "Eco Tip: Segregate your biodegradable and non-biodegradable waste to help keep our barangay clean.",
	entsmsmessage.MessageTypeEmergency:  "Emergency Alert: Please be advised of an urgent waste-related announcement from Barangay Tambacan.",
}

// Template returns the pre-filled body for a message type. Unknown types
// and custom messages return an empty string.
func Template(t entsmsmessage.MessageType) string {
	return templates[t]
}
