package bot

import (
	"fmt"

	"github.com/slack-go/slack"
)

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, false, false)
}

func textInput(blockID, actionID, label, hint string, multiline bool) *slack.InputBlock {
	element := slack.NewPlainTextInputBlockElement(nil, actionID)
	element.Multiline = multiline
	var hintObj *slack.TextBlockObject
	if hint != "" {
		hintObj = plainText(hint)
	}
	return slack.NewInputBlock(blockID, plainText(label), hintObj, element)
}

// proposalModal collects a new project proposal. Block and action ids are
// read back in HandleViewSubmission.
func proposalModal() slack.ModalViewRequest {
	return slack.ModalViewRequest{
		Type:       slack.VTModal,
		CallbackID: CallbackProposal,
		Title:      plainText("Propose a Project"),
		Submit:     plainText("Submit Proposal"),
		Blocks: slack.Blocks{BlockSet: []slack.Block{
			textInput("project_title", "title", "Project Title", "", false),
			textInput("project_description", "description", "Description",
				"Explain your project idea and how it relates to biotech R&D AI agents", true),
			textInput("project_goals", "goals", "Goals & Deliverables",
				"What will you create by the end of the hackathon?", true),
			textInput("skills_needed", "skills", "Skills Needed",
				"What skills are you looking for in team members?", false),
		}},
	}
}

// submissionModal collects a final project submission.
func submissionModal() slack.ModalViewRequest {
	return slack.ModalViewRequest{
		Type:       slack.VTModal,
		CallbackID: CallbackSubmission,
		Title:      plainText("Submit Your Project"),
		Submit:     plainText("Submit"),
		Blocks: slack.Blocks{BlockSet: []slack.Block{
			textInput("project_name", "name", "Project Name", "", false),
			textInput("project_desc", "desc", "Description", "", true),
			textInput("project_link", "link", "GitHub/Demo Link", "", false),
		}},
	}
}

// participantsSearchModal is shown instead of a full listing once the
// directory outgrows a single message.
func participantsSearchModal(total int) slack.ModalViewRequest {
	return slack.ModalViewRequest{
		Type:       slack.VTModal,
		CallbackID: CallbackParticipantsSearch,
		Title:      plainText("Search Participants"),
		Blocks: slack.Blocks{BlockSet: []slack.Block{
			section(fmt.Sprintf("There are %d registered participants. Use commands to find specific participants:\n"+
				"• `/find-skills Python, Biology` to find by skills\n"+
				"• `/update-skills AI, Cloud` to update your skills", total)),
		}},
	}
}
