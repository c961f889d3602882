// prompts.go - Prompt templates for the consultation endpoints.
// Keeping them in one file makes them easy to tweak without touching
// the handlers. Each template takes the joined symptom list (or the
// extracted report text) via %s.

package gemini

const (
	// CausePrompt asks for the single most likely cause plus a short
	// rationale.
	CausePrompt = `Based on these symptoms: %s, provide:

CAUSE:
[Most likely cause]

EXPLANATION:
[Brief explanation of why this might be the cause, 2-3 lines max]`

	// TreatmentPrompt asks for exactly 3 bulleted treatment steps.
	TreatmentPrompt = `List 3 key treatment steps for these symptoms in bullet points. Keep each point to one line:

• [Step 1]
• [Step 2]
• [Step 3]

Symptoms: %s`

	// MedicationPrompt asks for a strict Name/Power/Dose/Duration block
	// for 2-3 over-the-counter medications. The handler inserts a <br>
	// separator before each "Medication N:" marker afterwards.
	MedicationPrompt = `Based on these symptoms: %s, provide only essential medication details in this EXACT format:

Medication 1:
- Name: [medicine name]
- Power: [strength in mg/ml]
- Dose: [how many times per day]
- Duration: [for how many days]
<br>
Medication 2:
- Name: [medicine name]
- Power: [strength in mg/ml]
- Dose: [how many times per day]
- Duration: [for how many days]
<br>
Note: List only 2-3 common over-the-counter medications. No descriptions, side effects, or additional information.`

	// HomeRemediesPrompt asks for exactly 2 "Remedy | Instructions" lines.
	HomeRemediesPrompt = `Give 2 simple home remedies for these symptoms. Format as:

1. [Remedy] | [Brief instructions]
2. [Remedy] | [Brief instructions]

Symptoms: %s`

	// DoctorPrompt asks for exactly one specialist slug from the closed
	// vocabulary below. The reply is still validated server-side.
	DoctorPrompt = `Based on these symptoms: %s, recommend exactly one most appropriate medical specialist from this list: general-physician, dermatologist, orthopedist, cardiologist, ent-specialist, neurologist, psychiatrist, pediatrician, gynecologist, dentist, ophthalmologist, pulmonologist, gastroenterologist.
NOTE: Return ONLY the specialist name from the list above, without any additional text or explanation.
Do not add words like "doctor" or "specialist" to the name.`

	// ReportPrompt summarizes the text extracted from an uploaded
	// medical report.
	ReportPrompt = `Analyze this medical report and provide a clear summary in this format:

KEY FINDINGS:
- List the main findings
- Include any abnormal values
- Note important metrics

RECOMMENDATIONS:
- Suggest follow-up actions
- Note any concerning values
- Provide general health advice

Medical Report Content:
%s`
)

// DefaultSpecialty is returned when the model's reply is not in the
// vocabulary.
const DefaultSpecialty = "general-physician"

// Specialties is the closed vocabulary of referral slugs the frontend
// builds specialist-search links from.
var Specialties = []string{
	"general-physician",
	"dermatologist",
	"orthopedist",
	"cardiologist",
	"ent-specialist",
	"neurologist",
	"psychiatrist",
	"pediatrician",
	"gynecologist",
	"dentist",
	"ophthalmologist",
	"pulmonologist",
	"gastroenterologist",
}

// IsSpecialty reports whether slug belongs to the closed vocabulary.
func IsSpecialty(slug string) bool {
	for _, s := range Specialties {
		if s == slug {
			return true
		}
	}
	return false
}
