package rulesets

import "github.com/MessageComply/ComplyGate/pkg/domain/compliance"

// optInRuleSet covers the disclosures an A2P 10DLC / Toll-Free opt-in flow
// must carry. Phrasings are stored normalized (lower case, single spaces)
// and each requirement lists several real-world wordings, not one canonical
// sentence.
func optInRuleSet() compliance.RuleSet {
	return compliance.RuleSet{
		DocumentType: compliance.OptIn,
		Requirements: []compliance.Requirement{
			{
				ID:    "sender_identification",
				Label: "Business/sender identification",
				AcceptedPhrasings: []string{
					"you agree to receive text messages from",
					"you are signing up to receive messages from",
					"sign up for text alerts from",
					"receive recurring automated marketing text messages from",
				},
				Explanation: "Carriers require the opt-in flow to name the business that will be sending messages, so consumers know who they are hearing from.",
				FixTemplate: "By submitting this form, you agree to receive text messages from [Business Name].",
			},
			{
				ID:    "consent_language",
				Label: "Explicit consent language",
				AcceptedPhrasings: []string{
					"by providing your phone number, you agree to receive text messages",
					"by signing up via text, you agree to receive recurring messages",
					"you consent to receive sms messages",
					"by submitting this form, you consent to receive text messages",
				},
				DisallowedPhrasings: []string{
					"your number may be used without consent",
				},
				Explanation: "The flow must state that providing a phone number constitutes consent to receive messages. Implied or buried consent does not pass carrier review.",
				FixTemplate: "By providing your phone number, you agree to receive text messages from [Business Name]. Consent is not a condition of purchase.",
			},
			{
				ID:    "message_frequency",
				Label: "Message frequency disclosure",
				AcceptedPhrasings: []string{
					"message frequency may vary",
					"message frequency varies",
					"you may receive up to 4 messages per month",
					"you will receive recurring messages",
				},
				Explanation: "Consumers must be told how often to expect messages, either a concrete cadence or a frequency-varies statement.",
				FixTemplate: "Message frequency may vary.",
			},
			{
				ID:    "data_rates",
				Label: "Message and data rates disclosure",
				AcceptedPhrasings: []string{
					"message and data rates may apply",
					"msg and data rates may apply",
					"standard message and data rates may apply",
					"msg & data rates may apply",
				},
				DisallowedPhrasings: []string{
					"free sms, no charges ever",
					"texts are always free, no charges",
				},
				Explanation: "The standard message-and-data-rates disclaimer is mandatory. Claims that messaging is free of any charges are misleading and disqualify the flow.",
				FixTemplate: "Message and data rates may apply.",
			},
			{
				ID:    "stop_help_optout",
				Label: "STOP/HELP opt-out instruction",
				AcceptedPhrasings: []string{
					"reply stop to unsubscribe",
					"reply stop to opt out",
					"text stop to cancel",
					"reply help for help or stop to cancel",
					"text help for help",
				},
				Explanation: "Every opt-in flow must explain how to opt out (STOP) and how to get help (HELP).",
				FixTemplate: "Reply HELP for help or STOP to cancel.",
			},
			{
				ID:    "policy_link",
				Label: "Privacy policy / terms reference",
				AcceptedPhrasings: []string{
					"see our privacy policy",
					"view our privacy policy at",
					"privacy policy and terms of service apply",
					"see terms and privacy policy",
				},
				Explanation: "The flow must link or point to the privacy policy and/or terms so the consumer can review how their data is handled before opting in.",
				FixTemplate: "See our Privacy Policy at [URL] and Terms of Service at [URL].",
			},
			{
				ID:    "consent_checkbox",
				Label: "Unchecked consent checkbox",
				// Phrasings anchor on the checkbox wording itself. Sharing the
				// generic consent suffix with consent_language would let plain
				// copy with no checkbox score as if one were described.
				AcceptedPhrasings: []string{
					"by checking this box",
					"check this box to agree",
					"checkbox is not pre-checked",
				},
				Explanation: "When the submission describes a web form, the SMS consent checkbox must be present and must not be pre-checked.",
				FixTemplate: "Add an unchecked checkbox labeled: \"I agree to receive text messages from [Business Name].\"",
				Optional:    true,
			},
		},
	}
}
