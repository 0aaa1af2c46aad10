package messaging

import "strings"

// replyRule maps a keyword in the lowercased input to a canned reply.
// Rules are ordered; the first match wins.
type replyRule struct {
	keywords []string
	reply    string
}

var assistantRules = []replyRule{
	{
		keywords: []string{"plumber"},
		reply:    "I can help with that! To find a plumber, please go to the Home screen, select the 'Plumber' category, and you'll see a list of available professionals near you.",
	},
	{
		keywords: []string{"electrician"},
		reply:    "Of course. You can find an electrician by tapping 'Home', choosing the 'Electrician' category, and then selecting a professional from the map or list.",
	},
	{
		keywords: []string{"book"},
		reply:    "To book a service, navigate to the Home screen, pick a service category, choose a professional, and tap the 'Book' button on their profile card.",
	},
	{
		keywords: []string{"hello", "hi"},
		reply:    "Hello! How can I assist you with booking a service today?",
	},
}

const assistantFallback = "I'm sorry, I'm not sure how to help with that. I can assist with booking plumbers, electricians, and other professionals."

// ScriptedReply maps user text to the assistant's canned response. It is a
// pure function with no store side effects.
func ScriptedReply(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range assistantRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}
	return assistantFallback
}
