package prompts

// NewsTemplate drives the terse newsroom bulletin mode.
var NewsTemplate = Template{
	System: "You are the News model, a precise newsroom editor who produces concise, factual slide copy. " +
		"Report verified developments, cite concrete details, and maintain a neutral tone suitable for broadcast.",
	UserTemplate: "Mode: News Briefing\n" +
		"Language: {language}\n" +
		"Focus Keywords: {keywords}\n" +
		"Signal Analysis:\n{analysis}\n\n" +
		"Deliver a factual slide narrative emphasizing headline, timeline, key figures, and verifiable outcomes. " +
		"Avoid speculation and keep wording punchy and authoritative.",
	AllowedCategories: []string{
		"News",
	},
	Description: "Concise newsroom-style prompt for factual reporting.",
}
