package conversation

import "fmt"

const (
	MsgWelcome = "Welcome to Skills Assessment ✅\n" +
		"Reply READY to begin.\n" +
		"To restart at any time type: (reset) or [RESET]"

	MsgReset = "Session reset ✅\nReply READY to begin again."

	MsgNoQuestions = "No active questions found in the system."

	MsgNoSession = "No active session found. Reply READY to begin.\n" +
		"Tip: type (reset) if you are stuck."

	MsgNeedChoice = "Please reply with A, B, C, D, or E.\n" +
		"(Or type (reset) / [RESET] to restart.)"

	MsgSessionError = "Session error. Reply READY to begin again.\n" +
		"Tip: type (reset) if it persists."

	MsgInvalidChoice = "Invalid choice. Reply A, B, C, D, or E.\n" +
		"Type (reset) to restart."

	MsgInternalError = "Something went wrong. Please try again in a moment.\n" +
		"Type (reset) if it keeps happening."
)

// Completion renders the end-of-assessment summary.
func Completion(soft, digital, overall float64) string {
	return fmt.Sprintf("Assessment completed ✅\n"+
		"Soft: %.2f/5\n"+
		"Digital: %.2f/5\n"+
		"Overall: %.2f/5\n\n"+
		"To do the assessment again, type: (reset) or [RESET], then READY.",
		soft, digital, overall)
}
