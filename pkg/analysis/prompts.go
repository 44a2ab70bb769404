package analysis

import "fmt"

const (
	recruiterInstruction = "You are an expert technical recruiter. Analyze the text provided and format the output in clean Markdown bullet points."
	atsInstruction       = "You are an advanced Applicant Tracking System (ATS). Compare the resume against the job description and provide a match score."

	resumePromptPrefix = "Analyze this resume and list technical skills, experience summary, and education:\n\n"
	jobPromptPrefix    = "Analyze this Job Description and list required skills, responsibilities, and preferred qualifications:\n\n"

	// Every line, blank ones included, carries the same eight-space indent the
	// model has always received.
	matchPromptTemplate = "\n" +
		"        Compare the parsed resume against the job description.\n" +
		"        \n" +
		"        Resume Analysis:\n" +
		"        %s\n" +
		"        \n" +
		"        Job Description Analysis:\n" +
		"        %s\n" +
		"        \n" +
		"        Output Requirements:\n" +
		"        1. Start exactly with \"Match percentage: XX%%\"\n" +
		"        2. List Matching Skills.\n" +
		"        3. List Missing Keywords/Skills.\n" +
		"        4. Provide 3 tips for improvement.\n" +
		"        "
)

func resumePrompt(resumeText string) string { return resumePromptPrefix + resumeText }

func jobPrompt(jobDescription string) string { return jobPromptPrefix + jobDescription }

func matchPrompt(parsedResume, parsedJob string) string {
	return fmt.Sprintf(matchPromptTemplate, parsedResume, parsedJob)
}
