package advisor

import "fmt"

func atsPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`Act as an applicant tracking system reviewer. Compare the resume with the job description
and rate how well it matches on a scale from 0 to 100.

Start your reply with a line of the form "Score: <number>", then give these sections:
Keyword Match: terms from the job description that the resume covers
Missing Keywords: important terms the resume lacks
Strengths: short bullet points
Areas for Improvement: short bullet points
Format and Structure: brief feedback

Job Description:
%s

Resume:
%s
`, jobDescription, resumeText)
}

var questionTypeFocus = map[QuestionType]string{
	QuestionGeneral:     "the candidate's overall background and motivation",
	QuestionTechnical:   "the skills and technologies named in the resume",
	QuestionBehavioral:  "past experiences and achievements described in the resume",
	QuestionSituational: "hypothetical scenarios in the roles and responsibilities the resume lists",
}

func interviewPrompt(resumeText string, qt QuestionType, n int) string {
	return fmt.Sprintf(`Write %d %s interview questions for the candidate below, focused on %s.
For every question explain why it is worth asking, what a strong answer contains,
and up to two follow-up questions.

Reply with JSON only:
{
  "questions": [
    {
      "question": string,
      "reasoning": string,
      "good_answer_criteria": string,
      "follow_ups": [string]
    }
  ]
}

Resume:
%s
`, n, qt, questionTypeFocus[qt], resumeText)
}

func quizPrompt(jobDescription string, n int) string {
	return fmt.Sprintf(`Write %d multiple-choice technical questions that test the knowledge the job below
requires. Each question has exactly four options labelled "A) ", "B) ", "C) " and "D) ",
one correct answer given as its letter, and a short explanation of why it is correct.

Reply with JSON only:
{
  "questions": [
    {
      "question": string,
      "options": ["A) ...", "B) ...", "C) ...", "D) ..."],
      "correct_answer": "A" | "B" | "C" | "D",
      "explanation": string
    }
  ]
}

Job Description:
%s
`, n, jobDescription)
}

func profilePrompt(resumeText string) string {
	return fmt.Sprintf(`Read the resume below and return its content as JSON only, using exactly this shape
(use empty strings or empty arrays when something is missing; every value is a string):
{
  "contact": {"name": string, "email": string, "phone": string, "location": string},
  "summary": string,
  "skills": {"technical": [string], "soft": [string]},
  "experience": [{"company": string, "role": string, "duration": string, "responsibilities": [string]}],
  "education": [{"degree": string, "institution": string, "year": string}],
  "certifications": [string],
  "projects": [{"name": string, "description": string}]
}

Resume:
%s
`, resumeText)
}

func suggestionsPrompt(resumeText string) string {
	return fmt.Sprintf(`Review the resume below and give specific, actionable advice under these headings:
Overall Assessment, Content Improvements, Formatting, Keyword Optimization for ATS,
Action Verbs, Quantifiable Achievements, Section-by-Section Recommendations, Industry Tips.

Resume:
%s
`, resumeText)
}
