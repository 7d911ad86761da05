package rulesets

import "github.com/MessageComply/ComplyGate/pkg/domain/compliance"

// privacyPolicyRuleSet covers the SMS-related clauses a privacy policy must
// carry to pass A2P 10DLC and Toll-Free verification.
func privacyPolicyRuleSet() compliance.RuleSet {
	return compliance.RuleSet{
		DocumentType: compliance.PrivacyPolicy,
		Requirements: []compliance.Requirement{
			{
				ID:    "sms_consent_clause",
				Label: "SMS/text-messaging consent clause",
				AcceptedPhrasings: []string{
					"by opting in to receive sms messages, you consent to receive text messages",
					"when you provide your phone number, you consent to receive text messages",
					"text messaging originator opt-in data and consent",
					"you agree to receive sms messages from us",
				},
				Explanation: "The policy must address SMS consent explicitly, not just general data collection.",
				FixTemplate: "By opting in to receive SMS messages from [Business Name], you consent to receive recurring text messages at the number provided.",
			},
			{
				ID:    "message_frequency",
				Label: "Message frequency disclosure",
				AcceptedPhrasings: []string{
					"message frequency may vary",
					"message frequency varies",
					"you may receive up to 4 messages per month",
				},
				Explanation: "The policy must tell readers how often messages are sent, or that frequency varies.",
				FixTemplate: "Message frequency may vary.",
			},
			{
				ID:    "data_rates",
				Label: "Message and data rates disclaimer",
				AcceptedPhrasings: []string{
					"message and data rates may apply",
					"msg and data rates may apply",
					"standard message and data rates may apply",
				},
				DisallowedPhrasings: []string{
					"free sms, no charges ever",
				},
				Explanation: "The message-and-data-rates disclaimer must appear in the policy as well as the opt-in flow.",
				FixTemplate: "Message and data rates may apply.",
			},
			{
				ID:    "stop_optout",
				Label: "STOP/opt-out instruction",
				AcceptedPhrasings: []string{
					"reply stop to opt out",
					"reply with 'stop' to the number from which you received the message",
					"if you wish to stop receiving text messages, reply stop",
					"text stop to unsubscribe at any time",
				},
				Explanation: "The policy must explain how a recipient stops receiving messages.",
				FixTemplate: "If you are receiving text messages from us and wish to stop receiving them, simply reply STOP to the number from which you received the message.",
			},
			{
				ID:    "no_third_party_sharing",
				Label: "No third-party sharing for marketing",
				AcceptedPhrasings: []string{
					"we will not share mobile contact information with third parties or affiliates for marketing or promotional purposes",
					"we will not share your phone number with third parties for marketing purposes",
					"we do not sell or share your personal information with third parties for promotional purposes",
					"this information will not be shared with any third parties",
				},
				DisallowedPhrasings: []string{
					"we may share your number with partners",
					"we sell your data",
				},
				Explanation: "Carriers require a statement that mobile opt-in data is not shared with third parties or affiliates for marketing or promotional purposes.",
				FixTemplate: "We will not share your mobile contact information with third parties or affiliates for marketing or promotional purposes.",
			},
			{
				ID:    "subcontractor_disclosure",
				Label: "Subcontractor/support-services carve-out",
				AcceptedPhrasings: []string{
					"information sharing to subcontractors in support services, such as customer service, is permitted",
					"we may share data with subcontractors that provide support services such as customer service",
					"sharing with service providers acting on our behalf is permitted",
				},
				Explanation: "The carve-out for subcontractors performing support services (e.g. customer service) must be disclosed alongside the no-sharing clause.",
				FixTemplate: "Information sharing to subcontractors in support services, such as customer service, is permitted.",
			},
		},
	}
}
