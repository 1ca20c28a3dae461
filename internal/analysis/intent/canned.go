package intent

// cannedAnswers maps intent names to fixed reply templates. Intents with no
// entry (unknown among them) force the pipeline to fall through to the
// external provider.
var cannedAnswers = map[string]string{
	Greeting: "Hello! I'm Gabriel's AI concierge — ask me about his projects, skills, education, or how to contact him.",
	"contact": "Contact Gabriel: GitHub — https://github.com/defnotwig, LinkedIn — https://www.linkedin.com/in/glrrivera/, Email — ludwigrivera13@gmail.com, Phone — 09942372275.",
	"education": "Gabriel is pursuing a BS in Information Technology at the City College of Calamba (2022–Present).",
	"projects": "Highlighted projects: K-WISE PC Builder Kiosk (campus kiosk with AI-driven builds), QR Attendance Tracker (C# WinForms), PC Build Optimizer (AI-guided). Ask for a specific project to get more details.",
	"project_details": "K-WISE PC Builder Kiosk: multi-terminal campus kiosk with analytics-ready admin dashboard; notable stats reported include ~99.87% build pass, ~93.14% rule agreement, sub-2s AI responses, 3.80/4.0 satisfaction and ~1062% ROI. QR Attendance Tracker: C# / WinForms, QR-based logging/export.",
	"skills": "Tech highlights: Frontend — JavaScript, React.js, HTML, CSS; Backend & DB — Node.js, Express.js, MySQL/Postgres/MongoDB; Tools — VSCode, Git/GitHub; AI & Systems — LLMs, prompt engineering, Ollama DeepSeek.",
	"experience": "Experience highlights: Membership & Election Committee Head (CCC ITS, 2024–2025); Project Lead — K-WISE PC Builder Kiosk (2025); Developer — QR Attendance Tracker (2025); QA — Shopee Philippines (Apr–Oct 2022); Freelance Developer (2023–Present).",
	"personal_info": "Personal details such as age or gender are not included in Gabriel's professional portfolio. I can help with skills, projects, education, or contact info.",
	"availability": "Availability for work or freelance is not explicitly listed in the portfolio. For inquiries, please reach out via the contact methods (GitHub/LinkedIn/email) and Gabriel will respond if available.",
	"resume": "A downloadable resume isn't provided directly on the portfolio. You can find Gabriel's public work on GitHub (https://github.com/defnotwig) and LinkedIn (https://www.linkedin.com/in/glrrivera/); contact him for a formal resume.",
	"certifications": "Certifications mentioned: Huawei Developer Expert, Generative AI Leader (Google), Generative AI Professional (Oracle), Software Engineering (TestDome).",
	"location": "Gabriel is based in Calamba, Philippines. For timezone-specific scheduling please contact him via LinkedIn or email to confirm.",
	"repo": "Gabriel's public code can be found at https://github.com/defnotwig — check the repositories for project examples and code samples.",
	"achievements": "Notable outcomes: K-WISE reported strong build pass and satisfaction metrics, and project-level ROI and payback were highlighted in project summaries. Ask which metric you want more detail about.",
	"thanks": "You're welcome — glad to help!",
	Empty:    "Please type a message and I'll route it properly.",
}

// Answer returns the canned reply for the intent, or false when the intent
// has none and the caller must fall back to the next tier.
func Answer(intent string) (string, bool) {
	answer, ok := cannedAnswers[intent]
	return answer, ok
}
