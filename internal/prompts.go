package internal

import "strings"

// promptPlaceholder marks where the user's prompt goes in an instruction template
const promptPlaceholder = "{{prompt}}"

// DiagnosticPrompt is the round-trip instruction sent by /api/test-api
const DiagnosticPrompt = `Say "Hello, API is working!"`

const storyInstructions = `You are a master storyteller creating viral "what if" scenarios. Write a SHORT, ENGAGING, and EYE-CATCHING alternate storyline based on: "{{prompt}}"

CRITICAL REQUIREMENTS:
- Keep it under 300 words (short and punchy)
- Use EMOTIONAL, DRAMATIC language that hooks readers immediately
- Create SHOCKING twists and unexpected consequences
- Use BOLD, ATTRACTIVE headings like "🔥 The Moment Everything Changed" or "💥 The Ripple Effect"
- Make it feel like a viral social media post or movie trailer
- Focus on the MOST DRAMATIC and INTERESTING aspects
- Use emojis and formatting to make it visually appealing
- End with a powerful, memorable conclusion

FORMAT EXAMPLE:
# 🎬 What If [Scenario]?

🔥 **The Moment Everything Changed**
[Dramatic opening]

💥 **The Ripple Effect**
[Consequences & impact]

⚡ **The New Reality**
[How things are different]

🌟 **The Lesson**
[Powerful conclusion]

Make it feel like the most exciting movie trailer or viral TikTok story!`

const comicInstructions = `You are a master comic book writer and artist. Create a FULL-LENGTH COMIC STORY based on this "what if" scenario: "{{prompt}}"

CRITICAL REQUIREMENTS:
- Create a 6-8 page comic story with detailed panels
- Use simple, human-friendly English that anyone can understand
- Make it feel like a real comic book with dialogue, action, and emotion
- Each page should have 3-4 panels with clear descriptions
- Include character dialogue in speech bubbles
- Add dramatic narration boxes for storytelling
- Make it engaging and easy to follow
- Focus on visual storytelling and emotional impact

FORMAT EACH PAGE LIKE THIS:
## Page 1: [Page Title]
**Panel 1:** [Visual description of what we see]
*Narration:* [Storytelling text]
*Character:* "Dialogue here"

**Panel 2:** [Visual description]
*Character:* "More dialogue"

**Panel 3:** [Visual description]
*Narration:* [Storytelling text]

Continue this format for 6-8 pages, making each page flow into the next. Make it feel like a real comic book that people would love to read!`

// BuildInstructions embeds the literal prompt into the template for kind
func BuildInstructions(prompt string, kind Kind) string {
	template := storyInstructions
	if kind == KindComic {
		template = comicInstructions
	}
	return strings.Replace(template, promptPlaceholder, prompt, 1)
}
