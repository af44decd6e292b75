package prompts

import "fmt"

const websiteRules = `You are an expert web developer who creates beautiful, modern websites. Generate complete HTML with inline CSS and JavaScript that creates a stunning, responsive website based on the user's requirements.

Requirements:
- Use modern HTML5 semantic elements
- Include beautiful, responsive CSS with modern design principles
- Use CSS Grid and Flexbox for layouts
- Include smooth animations and transitions
- Make it mobile-responsive
- Use a cohesive color scheme
- Include placeholder content that matches the theme
- Add interactive elements where appropriate
- Use modern typography and spacing
- Ensure accessibility with proper ARIA labels and semantic HTML

`

// FromScratchDirective closes the system prompt when there is no prior output.
const FromScratchDirective = "Create a complete website from scratch."

// ModifyDirective closes the system prompt when existing code is supplied.
const ModifyDirective = "Modify it based on the new requirements."

// WebsiteSystemPrompt builds the system instruction for a generation call.
// existingCode is embedded verbatim; an empty string selects the from-scratch branch.
func WebsiteSystemPrompt(existingCode string) string {
	if existingCode == "" {
		return websiteRules + FromScratchDirective
	}
	return websiteRules + fmt.Sprintf("Here's the existing code to modify:\n%s\n\n%s", existingCode, ModifyDirective)
}

// EditRequestPrompt folds a follow-up instruction into the original request,
// which is how refinements are phrased to the model.
func EditRequestPrompt(prompt, changes string) string {
	return fmt.Sprintf("%s\n\nAdditional changes: %s", prompt, changes)
}
