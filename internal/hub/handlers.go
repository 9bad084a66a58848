package hub

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"samwad/backend/internal/config"
	"samwad/backend/internal/models"
)

// handleEvent dispatches one inbound event. Handlers follow a silent
// failure policy: unregistered senders, unauthorized senders and
// unknown targets are logged and ignored, never answered with errors.
func (h *Hub) handleEvent(in Inbound) {
	switch in.Event.Name {
	case EvRegisterIdentity:
		h.handleRegister(in)
	case EvJoinQueue:
		h.handleJoinQueue(in)
	case EvLeaveQueue:
		h.handleLeaveQueue(in)
	case EvGetQueue:
		h.handleGetQueue(in)
	case EvGetStatus:
		h.send(in.Client, models.NewEvent(EvStatusUpdate, h.Presence.Snapshot()))
	case EvInvite:
		h.handleInvite(in)
	case EvSignalingOffer, EvSignalingAnswer:
		h.relaySignal(in, true)
	case EvSignalingCand:
		h.relaySignal(in, false)
	case EvShareMeetingLink:
		h.handleShareMeetingLink(in)
	case EvChatMessage:
		h.handleChat(in)
	case EvEndCall:
		h.handleEndCall(in)
	case EvSubmitRating:
		h.handleRating(in)
	case EvGetLogs:
		h.handleGetLogs(in)
	case EvGetGrievances:
		h.handleGetGrievances(in)
	case EvUpdateGrievance:
		h.handleUpdateGrievance(in)
	case EvGetMyHistory:
		h.handleGetMyHistory(in)
	case EvSetWaitOverride:
		h.handleSetWaitOverride(in)
	default:
		log.Debug().Str("event", in.Event.Name).Msg("unknown event ignored")
	}
}

// decode unmarshals the event payload, logging and rejecting malformed
// data. A handler that gets false must bail out.
func decode(in Inbound, v any) bool {
	if err := json.Unmarshal(in.Event.Data, v); err != nil {
		log.Warn().Err(err).Str("event", in.Event.Name).Str("conn_id", in.Client.ConnID()).
			Msg("bad event payload")
		return false
	}
	return true
}

func (h *Hub) handleRegister(in Inbound) {
	var identity models.Identity
	if !decode(in, &identity) {
		return
	}
	identity.ConnID = in.Client.ConnID()

	h.Registry.Register(&identity)
	log.Info().Str("conn_id", identity.ConnID).Str("name", identity.Name).
		Str("role", identity.Role).Msg("identity registered")

	if identity.Role == models.RoleOfficial {
		now := h.now()
		h.Presence.SetOnline(now)
		if err := h.Storage.SaveLastOnline(now); err != nil {
			log.Warn().Err(err).Msg("could not persist last-online timestamp")
		}
		h.broadcastAll(models.NewEvent(EvStatusUpdate, h.Presence.Snapshot()))
	}

	h.send(in.Client, models.NewEvent(EvRegistrationAck, models.RegistrationAck{
		ConnectionID: identity.ConnID,
	}))
}

func (h *Hub) handleJoinQueue(in Inbound) {
	connID := in.Client.ConnID()
	if _, ok := h.Registry.Lookup(connID); !ok {
		log.Warn().Str("conn_id", connID).Msg("queue join from unregistered connection ignored")
		return
	}

	pos, already := h.Queue.Join(connID)
	// The joiner always gets its status back, even on a duplicate join,
	// in case the earlier update was missed.
	h.send(in.Client, models.NewEvent(EvQueueUpdate, models.QueueStatus{
		Position:             pos,
		EstimatedWaitMinutes: h.Queue.EstimatedWait(pos),
	}))

	if !already {
		h.notifyOfficialQueue()
	}
}

func (h *Hub) handleLeaveQueue(in Inbound) {
	if h.Queue.Remove(in.Client.ConnID()) {
		h.notifyOfficialQueue()
	}
}

func (h *Hub) handleGetQueue(in Inbound) {
	if !h.Registry.IsOfficial(in.Client.ConnID()) {
		return
	}
	h.notifyOfficialQueue()
}

func (h *Hub) handleInvite(in Inbound) {
	if !h.Registry.IsOfficial(in.Client.ConnID()) {
		return
	}
	var req models.InviteRequest
	if !decode(in, &req) {
		return
	}

	h.sendTo(req.TargetConnectionID, models.NewEvent(EvIncomingCall, models.IncomingCall{
		From: in.Client.ConnID(),
	}))

	// Busy is advisory only: it never blocks a further invite.
	h.Presence.SetBusy()
	h.broadcastAll(models.NewEvent(EvStatusUpdate, h.Presence.Snapshot()))

	h.Queue.Remove(req.TargetConnectionID)
	h.notifyOfficialQueue()
}

// relaySignal forwards an opaque signaling payload to the named target.
// Offer/answer carry the sender's connection ID so the receiver knows
// who to answer; candidates do not need it.
func (h *Hub) relaySignal(in Inbound, tagSender bool) {
	var sig models.SignalingPayload
	if !decode(in, &sig) {
		return
	}
	if sig.Target == "" {
		log.Warn().Str("event", in.Event.Name).Msg("signaling without target ignored")
		return
	}

	out := models.SignalingPayload{Payload: sig.Payload}
	if tagSender {
		out.From = in.Client.ConnID()
	}
	h.sendTo(sig.Target, models.NewEvent(in.Event.Name, out))
}

func (h *Hub) handleShareMeetingLink(in Inbound) {
	var ml models.MeetingLink
	if !decode(in, &ml) {
		return
	}
	if ml.Target == "" {
		log.Warn().Msg("meeting link without target ignored")
		return
	}

	h.sendTo(ml.Target, models.NewEvent(EvReceiveMeetingLink, models.MeetingLink{
		Link: ml.Link,
		From: in.Client.ConnID(),
	}))

	// A shared hosted meeting counts as the call starting.
	h.Presence.SetBusy()
	h.broadcastAll(models.NewEvent(EvStatusUpdate, h.Presence.Snapshot()))
}

func (h *Hub) handleChat(in Inbound) {
	var env models.ChatEnvelope
	if !decode(in, &env) {
		return
	}
	if env.Target == "" {
		log.Warn().Msg("chat without target ignored")
		return
	}

	h.sendTo(env.Target, models.NewEvent(EvChatMessage, models.ChatEnvelope{Message: env.Message}))
	h.Coordinator.Append(in.Client.ConnID(), env.Target, env.Message)
}

func (h *Hub) handleEndCall(in Inbound) {
	var req models.EndCall
	if !decode(in, &req) {
		return
	}
	if req.Target == "" {
		return
	}

	senderID := in.Client.ConnID()

	// Resolve which side is the citizen: whichever side is not known to
	// be the official.
	citizenID, officialID := req.Target, senderID
	if h.Registry.Role(req.Target) == models.RoleOfficial {
		citizenID, officialID = senderID, req.Target
	}

	sessionID := uuid.New().String()
	ended := models.NewEvent(EvCallEnded, models.CallEnded{SessionID: sessionID})
	h.sendTo(req.Target, ended)
	h.send(in.Client, ended)

	now := h.now()
	h.Presence.SetOnline(now)
	if err := h.Storage.SaveLastOnline(now); err != nil {
		log.Warn().Err(err).Msg("could not persist last-online timestamp")
	}
	h.broadcastAll(models.NewEvent(EvStatusUpdate, h.Presence.Snapshot()))

	// The transcript buffer is removed exactly once at termination,
	// whether or not a record gets persisted below.
	transcript := h.Coordinator.Take(citizenID, officialID)

	citizen, ok := h.Registry.Lookup(citizenID)
	if !ok || citizen.Role != models.RoleCitizen {
		log.Info().Str("session_id", sessionID).Msg("call ended without a valid citizen side, no record kept")
		return
	}

	record := &models.SessionRecord{
		SessionID:     sessionID,
		CitizenName:   citizen.Name,
		CitizenMobile: citizen.Mobile,
		District:      citizen.District,
		Block:         citizen.Block,
		Village:       citizen.Village,
		StartTime:     now,
		EndTime:       now,
		Messages:      toSessionMessages(sessionID, transcript),
	}
	if err := h.Storage.SaveSession(record); err != nil {
		// Termination already completed for both humans; the record is
		// the only casualty.
		log.Error().Err(err).Str("session_id", sessionID).Msg("session persistence failed")
	}
}

func toSessionMessages(sessionID string, transcript []models.ChatMessage) []models.SessionMessage {
	out := make([]models.SessionMessage, 0, len(transcript))
	for _, m := range transcript {
		out = append(out, models.SessionMessage{
			SessionID: sessionID,
			Sender:    m.Sender,
			Type:      m.Type,
			Content:   m.Content,
			URL:       m.URL,
			Timestamp: m.Timestamp,
		})
	}
	return out
}

func (h *Hub) handleRating(in Inbound) {
	var sub models.RatingSubmission
	if !decode(in, &sub) {
		return
	}
	if sub.Rating < config.RatingMin || sub.Rating > config.RatingMax {
		return
	}
	if sub.Role != models.RoleCitizen && sub.Role != models.RoleOfficial {
		return
	}
	if err := h.Storage.AttachRating(sub.SessionID, sub.Role, sub.Rating); err != nil {
		log.Error().Err(err).Str("session_id", sub.SessionID).Msg("rating attach failed")
	}
}

func (h *Hub) handleGetLogs(in Inbound) {
	if !h.Registry.IsOfficial(in.Client.ConnID()) {
		return
	}
	sessions, err := h.Storage.GetAllSessions()
	if err != nil {
		log.Error().Err(err).Msg("could not load session history")
		return
	}
	h.send(in.Client, models.NewEvent(EvLogsUpdate, sessions))
}

func (h *Hub) handleGetGrievances(in Inbound) {
	if !h.Registry.IsOfficial(in.Client.ConnID()) {
		return
	}
	h.pushGrievances(in.Client.ConnID())
}

func (h *Hub) handleUpdateGrievance(in Inbound) {
	if !h.Registry.IsOfficial(in.Client.ConnID()) {
		return
	}
	var edit models.GrievanceEdit
	if !decode(in, &edit) {
		return
	}
	if err := h.Storage.UpdateGrievance(edit.ID, edit.Remark, edit.Status); err != nil {
		log.Error().Err(err).Str("grievance_id", edit.ID).Msg("grievance update failed")
		return
	}
	h.pushGrievances(in.Client.ConnID())
}

func (h *Hub) handleGetMyHistory(in Inbound) {
	identity, ok := h.Registry.Lookup(in.Client.ConnID())
	if !ok || identity.Mobile == "" {
		return
	}
	sessions, err := h.Storage.GetSessionsByMobile(identity.Mobile)
	if err != nil {
		log.Error().Err(err).Str("mobile", identity.Mobile).Msg("could not load citizen history")
		return
	}
	h.send(in.Client, models.NewEvent(EvHistoryUpdate, sessions))
}

func (h *Hub) handleSetWaitOverride(in Inbound) {
	if !h.Registry.IsOfficial(in.Client.ConnID()) {
		return
	}
	var ov models.WaitOverride
	if !decode(in, &ov) {
		return
	}

	h.Queue.SetOverride(ov.Minutes)
	if err := h.Storage.SaveWaitOverride(ov.Minutes); err != nil {
		log.Warn().Err(err).Msg("could not persist wait override")
	}

	// Every queued citizen gets a fresh estimate immediately.
	h.rebroadcastQueue()
	h.send(in.Client, models.NewEvent(EvWaitOverrideAck, ov))
}
