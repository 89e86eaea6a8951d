package ai

import (
	"encoding/json"
	"strings"
)

// ContentKind selects the canned system prompt for admin copy generation.
// The set is closed: handlers reject anything not in the table before a
// single model call is made.
type ContentKind string

const (
	ContentWelcome      ContentKind = "welcome_message"
	ContentDailyTip     ContentKind = "daily_tip"
	ContentAffirmation  ContentKind = "affirmation"
	ContentAnnouncement ContentKind = "announcement"
)

var contentPrompts = map[ContentKind]string{
	ContentWelcome: "You write short, warm welcome copy for a personal wellness app. " +
		"Speak directly to the reader in second person. Two sentences at most, no emoji.",
	ContentDailyTip: "You write one practical, evidence-minded wellness tip for a mobile app. " +
		"Keep it under 40 words and actionable today. No preamble, no emoji.",
	ContentAffirmation: "You write a single calm, grounded affirmation for a wellness app. " +
		"One sentence, present tense, no quotation marks.",
	ContentAnnouncement: "You write concise in-app announcement copy for a wellness app. " +
		"Friendly but plain. One short paragraph, no marketing superlatives.",
}

// SystemPrompt resolves a content kind to its canned system prompt.
func SystemPrompt(kind ContentKind) (string, bool) {
	p, ok := contentPrompts[kind]
	return p, ok
}

// Tone selects the rewrite instruction for the improve endpoint.
type Tone string

const (
	ToneGentle       Tone = "gentle"
	ToneMotivational Tone = "motivational"
	ToneConcise      Tone = "concise"
	ToneProfessional Tone = "professional"
)

var tonePrompts = map[Tone]string{
	ToneGentle: "Rewrite the user's text in a softer, more supportive voice. " +
		"Preserve the meaning. Return only the rewritten text.",
	ToneMotivational: "Rewrite the user's text to be energizing and encouraging without " +
		"being pushy. Preserve the meaning. Return only the rewritten text.",
	ToneConcise: "Rewrite the user's text to be as short as possible while keeping every " +
		"fact. Return only the rewritten text.",
	ToneProfessional: "Rewrite the user's text in a clear, neutral, professional register. " +
		"Return only the rewritten text.",
}

// TonePrompt resolves a tone to its rewrite instruction.
func TonePrompt(tone Tone) (string, bool) {
	p, ok := tonePrompts[tone]
	return p, ok
}

// PlanTier selects the feature-list prompt.
type PlanTier string

const (
	PlanPremium  PlanTier = "premium"
	PlanLifetime PlanTier = "lifetime"
)

var planPrompts = map[PlanTier]string{
	PlanPremium: "List the member benefits of the premium plan of a wellness app: guided " +
		"meditations, advanced insights, custom themes, priority support. Respond with a " +
		"JSON array of short strings, nothing else.",
	PlanLifetime: "List the member benefits of the lifetime plan of a wellness app: " +
		"everything in premium, one-time payment, all future features included. Respond " +
		"with a JSON array of short strings, nothing else.",
}

// PlanPrompt resolves a plan tier to its feature-list prompt.
func PlanPrompt(tier PlanTier) (string, bool) {
	p, ok := planPrompts[tier]
	return p, ok
}

// QuotePrompt is the fixed creative-writing prompt for the weekly quote.
const QuotePrompt = "You are a thoughtful writer. Compose one original, uplifting quote " +
	"about wellness, rest, or steady progress. It must be a single sentence under 30 " +
	"words, with no attribution, no quotation marks, and no emoji."

// ParseFeatureList interprets model output as a JSON array of short
// strings. When the model ignores the format, each non-empty line is
// taken as one feature with any leading bullet or dash marker stripped.
func ParseFeatureList(text string) []string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var features []string
	if err := json.Unmarshal([]byte(cleaned), &features); err == nil {
		return features
	}

	features = features[:0]
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		if line != "" {
			features = append(features, line)
		}
	}
	return features
}
