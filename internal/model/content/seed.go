package content

// Seed bundles the canonical portfolio content. The database is reset to
// this set on startup so the site always reflects the latest copy deck.
type Seed struct {
	About           About
	Experiences     []Experience
	Projects        []Project
	Certifications  []Certification
	Recommendations []Recommendation
}

// DefaultSeed provides the portfolio content required by the product.
func DefaultSeed() Seed {
	return Seed{
		About: About{
			Name:     "Gabriel Ludwig Rivera",
			Location: "Calamba, Philippines",
			Roles:    []string{"Software Developer", "IT Student", "Systems Builder"},
			Tagline:  "Designing resilient systems with Gen-Z polish, AI-first workflows, and production discipline.",
			Paragraphs: []string{
				"I am a full-stack software developer and BS Information Technology student with a strong foundation in web development, database management, and software engineering. My work focuses on designing and building reliable, high-performance systems using modern technologies across the frontend and backend. I have delivered end-to-end solutions such as the K-WISE PC Builder Kiosk and Attendance and Payroll Management System, applying structured system architecture, relational database design, and scalable API development to real operational environments.",
				"In addition to development, I bring experience in quality assurance and process validation from my work with Shopee Philippines, where I supported logistics and third-party operations through strict verification standards, barcode audits, and structured reporting. I also hold a leadership role in the City College of Calamba Information Technology Society, contributing to system-driven improvements for large student populations. Recently, I have been expanding into AI and machine-learning–assisted development, integrating LLM workflows to enhance recommendation systems, optimize engineering processes, and improve overall software delivery. I am continuously refining my skills to build dependable, production-ready systems that deliver measurable impact.",
			},
			Highlights: []string{
				"BS Information Technology, City College of Calamba (2022–Present)",
				"Membership & Election Committee Head, CCC IT Society (2024–2025)",
				"Project Lead, K-WISE PC Builder Kiosk (2025)",
				"Shopee Philippines — QA, Failed Deliveries (2022)",
			},
		},
		Experiences: []Experience{
			{
				Title:        "Membership & Election Committee Head",
				Organization: "Infomation Technology Society",
				Timeframe:    "2024 – Present",
				Description:  "Leading campus-wide student initiatives, election systems, and process automation for the IT student community.",
				Order:        1,
			},
			{
				Title:        "Project Lead",
				Organization: "K-WISE PC Builder Kiosk",
				Timeframe:    "2025",
				Description:  "Designed and deployed a self-service PC builder kiosk with an AI engine (Ollama DeepSeek R1) and 3,200+ compatibility rules, real-time build validation, and recommendation workflows informed by 32,240 historical compatibility checks.",
				Order:        2,
			},
			{
				Title:        "Quality Assurance — Failed Deliveries",
				Organization: "Shopee Philippines",
				Timeframe:    "Apr – Oct 2022",
				Description:  "Led end-to-end quality assurance for failed deliveries from key 3PL partners, performing barcode and item audits, parcel damage categorization, and QA compliance reporting to support return logistics and warehouse control.",
				Order:        4,
			},
			{
				Title:        "Freelance Software Developer",
				Organization: "Independent",
				Timeframe:    "2023 – Present",
				Description:  "Delivering bespoke web platforms, APIs, and automation scripts for MSMEs and campus partners.",
				Order:        5,
			},
			{
				Title:        "BS Information Technology",
				Organization: "City College of Calamba",
				Timeframe:    "2022 – Present",
				Description:  "Focusing on systems development, AI experimentation, and community-driven tech advocacy.",
				Order:        6,
			},
		},
		Projects: []Project{
			{
				Name:        "K-WISE PC Builder Kiosk",
				Description: "Self-service PC builder kiosk integrating Ollama DeepSeek R1 with 3,200+ compatibility rules and real-time validation; audited 32,240 historical checks achieving ~99.87% build-level pass rate, ~93.14% rule-level agreement, sub-2s AI responses, 3.80/4.0 user satisfaction, and an estimated 1062% ROI with a 9.2‑month payback.",
				Stack:       []string{"React.js", "Node.js", "Express.js", "PostgreSQL", "Ollama DeepSeek R1"},
				Year:        "2025",
				Image:       "/images/kwise.svg",
				Link:        "#kwise",
				Highlight:   "Self-service campus operations with QR identity",
				Order:       1,
			},
			{
				Name:        "QR Attendance Tracker",
				Description: "Windows desktop application built with C# / WinForms that processes student QR codes and syncs activity logs.",
				Stack:       []string{"C#", ".NET", "SQL Server"},
				Year:        "2025",
				Image:       "/images/qr-tracker.svg",
				Link:        "#qr",
				Highlight:   "Offline-first record keeping",
				Order:       2,
			},
			{
				Name:        "PC Build Optimizer",
				Description: "AI guided builder that blends component databases with conversational recommendations for budget-aware rigs.",
				Stack:       []string{"Next.js", "OpenAI", "Supabase"},
				Year:        "2024",
				Image:       "/images/pc-optimizer.svg",
				Link:        "#pc-build",
				Highlight:   "LLM reasoning for hardware planning",
				Order:       3,
			},
			{
				Name:        "E-Commerce Structure Clone",
				Description: "A modern React storefront backed by a C# API, mirroring enterprise-grade checkout flows for MSME demos.",
				Stack:       []string{"React", "C#", "PostgreSQL"},
				Year:        "2024",
				Image:       "/images/ecommerce.svg",
				Link:        "#commerce",
				Highlight:   "Composable cart + loyalty engine",
				Order:       4,
			},
		},
		Certifications: []Certification{
			{Title: "Huawei Developer Expert", Issuer: "Huawei", Year: "2025"},
			{Title: "Generative AI Leader", Issuer: "Google", Year: "2025"},
			{Title: "Software Engineering", Issuer: "TestDome", Year: "2024"},
			{Title: "Generative AI Professional", Issuer: "Oracle", Year: "2024"},
		},
		Recommendations: []Recommendation{
			{
				Quote:  "A highly dependable student and developer, Gabriel consistently produces quality systems that meet professional standards. His leadership and initiative within the CCC IT Society further reflect his professionalism.",
				Author: "Jasper Garcia, MIT",
				Role:   "Professor, Former Adviser of CCC ITS, City College of Calamba",
			},
			{
				Quote:  "From introductory programming to leading the K-WISE PC Builder Kiosk, Gabriel’s growth has been remarkable. He applies strong logic, clear structure, and confident leadership throughout the development process.",
				Author: "Regina Almonte, PhD",
				Role:   "Research Adviser & Professor, City College of Calamba",
			},
			{
				Quote:  "During capstone defense panels, Gabriel stood out for his clarity in explaining system architecture and answering complex questions. His work reflects both technical depth and reliability.",
				Author: "Arlou Fernando, MIT",
				Role:   "Dean, DCI & Lead Capstone Panel, City College of Calamba",
			},
			{
				Quote:  "Working alongside Gabriel on our capstone project showed his strength as a technical leader. He successfully integrated UI/UX with backend systems while guiding the team toward smooth deployment.",
				Author: "Kent Cyrem Patasin",
				Role:   "Former CCC ITS President & UI/UX Designer, City College of Calamba",
			},
			{
				Quote:  "As the backend lead of our capstone project, Gabriel made system integration seamless and easy to understand. His companionship and patience greatly improved my development skills.",
				Author: "Jake Mesina",
				Role:   "Frontend Developer & Colleague, City College of Calamba",
			},
		},
	}
}
