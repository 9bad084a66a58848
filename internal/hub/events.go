package hub

// Inbound event names.
const (
	EvRegisterIdentity = "register_identity"
	EvJoinQueue        = "join_queue"
	EvLeaveQueue       = "leave_queue"
	EvGetQueue         = "get_queue"
	EvGetStatus        = "get_status"
	EvInvite           = "invite"
	EvSignalingOffer   = "signaling_offer"
	EvSignalingAnswer  = "signaling_answer"
	EvSignalingCand    = "signaling_candidate"
	EvShareMeetingLink = "share_meeting_link"
	EvChatMessage      = "chat_message"
	EvEndCall          = "end_call"
	EvSubmitRating     = "submit_rating"
	EvGetLogs          = "get_logs"
	EvGetGrievances    = "get_grievances"
	EvUpdateGrievance  = "update_grievance"
	EvGetMyHistory     = "get_my_history"
	EvSetWaitOverride  = "set_wait_override"
)

// Outbound event names.
const (
	EvRegistrationAck     = "registration_ack"
	EvQueueUpdate         = "queue_update"
	EvQueueUpdateOfficial = "queue_update_official"
	EvStatusUpdate        = "status_update"
	EvIncomingCall        = "incoming_call"
	EvReceiveMeetingLink  = "receive_meeting_link"
	EvCallEnded           = "call_ended"
	EvLogsUpdate          = "logs_update"
	EvGrievanceUpdate     = "grievance_update"
	EvHistoryUpdate       = "history_update"
	EvWaitOverrideAck     = "wait_override_ack"
)
