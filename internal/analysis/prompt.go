package analysis

import "fmt"

const analysisSystemPrompt = "You are an AI assistant specialized in analyzing meeting transcripts for accounting professionals. You must only reply with JSON. [no prose]"

const emailSystemPrompt = "You are an AI assistant helping an accountant draft a follow-up email after a client meeting. The email should sound authentic, professional, and as if it's coming directly from the accountant who organized the meeting. You must only reply with JSON containing the email content."

const analysisSchema = `Provide the summary in the following JSON structure:
{
    "summary": "A concise summary of the requested information",
    "key_points": ["point1", "point2", "point3"],
    "details": [
        {
            "topic": "Specific topic or item",
            "description": "Detailed description",
            "relevance": "Why this is important for the accountant"
        }
    ],
    "follow_up_suggestions": ["suggestion1", "suggestion2"]
}`

const emailInstructions = `Based on the following meeting transcript, create a follow-up email to the client. The email should:

1. Briefly summarize the key points discussed in the meeting
2. Confirm any responsibilities or action items for the client
3. Mention any deadlines discussed or set reasonable deadlines if none were specified
4. Sound authentic and professional, as if written by the accountant who organized the meeting
5. End with a polite closing and offer for further assistance

Format the email with appropriate HTML tags, including <p> for paragraphs, <br> for line breaks, and any other relevant HTML formatting.

Provide the email content in the following JSON structure:
{
    "subject": "Meeting Follow-up: [Brief Description]",
    "body": "HTML formatted email content"
}`

// AnalysisUserPrompt builds the user message for a category analysis.
func AnalysisUserPrompt(c Category, transcriptText string) string {
	return fmt.Sprintf("%s\n\n%s\n\nTranscript:\n%s\n\n[Output only JSON]", c.Prompt(), analysisSchema, transcriptText)
}

// EmailUserPrompt builds the user message for the follow-up email draft.
func EmailUserPrompt(transcriptText string) string {
	return fmt.Sprintf("%s\n\nTranscript:\n%s\n\n[Output only JSON]", emailInstructions, transcriptText)
}
