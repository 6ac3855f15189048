package main

// questionBank is the default instrument: ten soft and ten digital items.
// Option labels A..E score 5..1.
var questionBank = []seedQuestion{
	{
		Domain:   "soft",
		Category: "Communication",
		Text:     "When you have to give feedback to a team member about a mistake they made, you usually:",
		Options: []string{
			"Speak with them privately and explain clearly what went wrong",
			"Send a brief message pointing out the error",
			"Mention it casually during a team meeting",
			"Wait to see if they notice it themselves",
			"Ask someone else to talk to them",
		},
	},
	{
		Domain:   "soft",
		Category: "Communication",
		Text:     "If you need to explain a complex new policy to your team, you are most likely to:",
		Options: []string{
			"Prepare a short presentation and leave time for questions",
			"Send an email with detailed notes",
			"Explain it briefly and offer to clarify if needed",
			"Share a document and assume they will read it",
			"Avoid explaining unless someone asks",
		},
	},
	{
		Domain:   "soft",
		Category: "Problem-Solving",
		Text:     "When you face a work challenge with no clear solution, your first step is usually to:",
		Options: []string{
			"Break the problem into parts and research each one",
			"Discuss with colleagues to gather ideas",
			"Try the first idea that comes to mind",
			"Look for similar past situations for guidance",
			"Wait for instructions from a supervisor",
		},
	},
	{
		Domain:   "soft",
		Category: "Problem-Solving",
		Text:     "If a project is delayed due to an unexpected issue, you:",
		Options: []string{
			"Analyze the cause and propose a new timeline",
			"Gather the team to brainstorm solutions",
			"Work extra hours to catch up",
			"Hope the issue resolves on its own",
			"Report it to your manager without suggestions",
		},
	},
	{
		Domain:   "soft",
		Category: "Adaptability & Flexibility",
		Text:     "Your workplace introduces a new required software. You:",
		Options: []string{
			"Start learning it immediately and explore all features",
			"Follow the training provided step-by-step",
			"Use only the basics needed to get by",
			"Stick to the old system if possible",
			"Avoid using it until absolutely necessary",
		},
	},
	{
		Domain:   "soft",
		Category: "Adaptability & Flexibility",
		Text:     "If your manager suddenly changes a deadline, you typically:",
		Options: []string{
			"Adjust your schedule right away and inform your team",
			"Feel stressed but try to adapt",
			"Ask for help to meet the new deadline",
			"Complain about the change",
			"Ignore the new deadline and work at your own pace",
		},
	},
	{
		Domain:   "soft",
		Category: "Time Management",
		Text:     "At the start of a busy workday, you usually:",
		Options: []string{
			"List all tasks and prioritize the most important",
			"Tackle tasks in the order they arrive",
			"Work on whatever feels urgent at the moment",
			"Jump between tasks throughout the day",
			"Struggle to decide where to begin",
		},
	},
	{
		Domain:   "soft",
		Category: "Time Management",
		Text:     "When you have multiple assignments with similar deadlines, you:",
		Options: []string{
			"Plan daily goals to finish each on time",
			"Focus on one until it’s done, then move to the next",
			"Work a little on each every day",
			"Rush to finish all near the deadline",
			"Ask for extensions on some tasks",
		},
	},
	{
		Domain:   "soft",
		Category: "Networking",
		Text:     "At a professional event, when you meet someone new, you usually:",
		Options: []string{
			"Introduce yourself and ask about their work",
			"Exchange contact information for future connection",
			"Chat politely but not about work topics",
			"Stay with people you already know",
			"Keep to yourself and avoid conversations",
		},
	},
	{
		Domain:   "soft",
		Category: "Networking",
		Text:     "If you need advice on a work topic outside your expertise, you:",
		Options: []string{
			"Reach out to a professional contact for guidance",
			"Search for experts online and connect with them",
			"Ask someone in your department",
			"Try to figure it out alone",
			"Skip that part of the task",
		},
	},
	{
		Domain:   "digital",
		Category: "Digital Communication",
		Text:     "How do you most often communicate with colleagues during work?",
		Options: []string{
			"Through email, chat apps, and video calls as needed",
			"Mainly email, sometimes phone calls",
			"Mostly in-person or phone, rarely digital tools",
			"Only when someone contacts me first",
			"I avoid digital communication when possible",
		},
	},
	{
		Domain:   "digital",
		Category: "Digital Communication",
		Text:     "When you receive an important work message online, you usually:",
		Options: []string{
			"Reply promptly and clearly",
			"Read it and reply later when convenient",
			"Acknowledge it with a quick response",
			"Wait to see if follow-up is needed",
			"Often miss or forget to respond",
		},
	},
	{
		Domain:   "digital",
		Category: "Data Management and Analysis",
		Text:     "If you need to organize project data, you typically:",
		Options: []string{
			"Use software like Excel or databases to sort and analyze",
			"Create simple lists or tables",
			"Write notes on paper",
			"Ask someone else to organize it",
			"Avoid dealing with data altogether",
		},
	},
	{
		Domain:   "digital",
		Category: "Data Management and Analysis",
		Text:     "When making a decision based on numbers or reports, you:",
		Options: []string{
			"Review the data, look for trends, and draw conclusions",
			"Check the main figures and trust your judgment",
			"Rely on summaries from others",
			"Go with your intuition",
			"Prefer not to use data in decisions",
		},
	},
	{
		Domain:   "digital",
		Category: "Use of Technology",
		Text:     "When given a new digital tool at work, you:",
		Options: []string{
			"Explore it fully and try to master all functions",
			"Learn the features needed for your tasks",
			"Use only what you already know",
			"Stick to older methods if allowed",
			"Avoid using it unless required",
		},
	},
	{
		Domain:   "digital",
		Category: "Use of Technology",
		Text:     "If a device or software isn’t working properly, you first:",
		Options: []string{
			"Try to troubleshoot using online resources",
			"Restart it or follow basic steps you know",
			"Ask a colleague for help",
			"Report it to IT and wait",
			"Stop using it until it’s fixed",
		},
	},
	{
		Domain:   "digital",
		Category: "Cybersecurity Awareness",
		Text:     "How do you handle passwords for work accounts?",
		Options: []string{
			"Use strong, unique passwords and change them regularly",
			"Use a mix of letters and numbers",
			"Use simple passwords easy to remember",
			"Use the same password for many accounts",
			"Write passwords down where others might see",
		},
	},
	{
		Domain:   "digital",
		Category: "Cybersecurity Awareness",
		Text:     "If you get an email from an unknown sender with a link, you:",
		Options: []string{
			"Delete it without opening",
			"Check the sender’s name and email address first",
			"Open but don’t click anything",
			"Click if the topic looks interesting",
			"Forward it to others to check",
		},
	},
	{
		Domain:   "digital",
		Category: "Digital Literacy for Innovation",
		Text:     "When you need to learn something new for your job, you usually:",
		Options: []string{
			"Search online for tutorials, courses, or videos",
			"Ask a coworker to show you",
			"Wait for formal training",
			"Try to learn from a manual or guide",
			"Avoid learning new things unless forced",
		},
	},
	{
		Domain:   "digital",
		Category: "Digital Literacy for Innovation",
		Text:     "If you hear about a useful new app for work, you:",
		Options: []string{
			"Try it out and see if it helps your productivity",
			"Read reviews and maybe try later",
			"Stick with what you already use",
			"Wait until your workplace officially adopts it",
			"Ignore it",
		},
	},
}
