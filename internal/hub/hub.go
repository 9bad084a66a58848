package hub

import (
	"time"

	"github.com/rs/zerolog/log"

	"samwad/backend/internal/models"
	"samwad/backend/internal/storage"
)

// Inbound pairs a decoded event with the connection it arrived on.
type Inbound struct {
	Client Client
	Event  models.Event
}

// GrievanceNotifier is told about grievances filed while the official
// has no live connection (e.g. a Telegram ping to the operator chat).
type GrievanceNotifier interface {
	GrievanceFiled(g models.Grievance)
}

// Hub owns all live state: connected clients, the identity registry,
// presence, the waiting queue and in-flight transcripts. Every mutation
// happens inside Run's single goroutine, so events are handled one at a
// time, to completion, in arrival order.
type Hub struct {
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client
	EventCh      chan Inbound

	// GrievanceCh is fed by the HTTP intake after a successful durable
	// write; the hub then refreshes the official's list or notifies.
	GrievanceCh chan models.Grievance

	// QueueTickCh drives the periodic, read-only wait-estimate
	// re-broadcast to every queued citizen.
	QueueTickCh chan struct{}

	Registry    *Registry
	Presence    *Presence
	Queue       *Queue
	Coordinator *Coordinator

	Storage  storage.Storage
	Notifier GrievanceNotifier

	now func() time.Time
}

// NewHub builds a hub and restores durable operational state (last-seen
// timestamp, manual wait override) from the store.
func NewHub(s storage.Storage) *Hub {
	h := &Hub{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		EventCh:      make(chan Inbound),
		GrievanceCh:  make(chan models.Grievance, 8),
		QueueTickCh:  make(chan struct{}, 1),
		Registry:     NewRegistry(),
		Presence:     NewPresence(),
		Queue:        NewQueue(),
		Coordinator:  NewCoordinator(),
		Storage:      s,
		now:          time.Now,
	}

	if t, err := s.LoadLastOnline(); err != nil {
		log.Warn().Err(err).Msg("could not restore last-online timestamp")
	} else {
		h.Presence.RestoreLastOnline(t)
	}
	if m, err := s.LoadWaitOverride(); err != nil {
		log.Warn().Err(err).Msg("could not restore wait override")
	} else {
		h.Queue.SetOverride(m)
	}

	return h
}

// Run is the hub's event loop. It must be the only goroutine touching
// hub state.
func (h *Hub) Run() {
	log.Info().Msg("hub started")

	for {
		select {
		case c := <-h.RegisterCh:
			h.Clients[c.ConnID()] = c
			log.Debug().Str("conn_id", c.ConnID()).Msg("connection opened")

		case c := <-h.UnregisterCh:
			h.disconnect(c)

		case in := <-h.EventCh:
			h.handleEvent(in)

		case g := <-h.GrievanceCh:
			h.handleGrievanceFiled(g)

		case <-h.QueueTickCh:
			h.rebroadcastQueue()
		}
	}
}

// disconnect is the single cleanup path for a closed connection:
// presence (if official), queue membership, identity binding, client map.
func (h *Hub) disconnect(c Client) {
	connID := c.ConnID()
	if _, ok := h.Clients[connID]; !ok {
		return
	}
	delete(h.Clients, connID)
	c.Close()

	if h.Queue.Remove(connID) {
		h.notifyOfficialQueue()
	}

	if h.Registry.Unregister(connID) {
		now := h.now()
		h.Presence.SetOffline(now)
		if err := h.Storage.SaveLastOnline(now); err != nil {
			log.Warn().Err(err).Msg("could not persist last-online timestamp")
		}
		h.broadcastAll(models.NewEvent(EvStatusUpdate, h.Presence.Snapshot()))
	}

	log.Debug().Str("conn_id", connID).Msg("connection closed")
}

// send delivers an event to one client without ever blocking the run
// loop. A full send buffer means the client is too slow; the event is
// dropped and logged.
func (h *Hub) send(c Client, ev models.Event) {
	select {
	case c.GetSendChannel() <- ev:
	default:
		log.Warn().Str("conn_id", c.ConnID()).Str("event", ev.Name).Msg("send buffer full, event dropped")
	}
}

// sendTo delivers an event to the named connection, if still present.
func (h *Hub) sendTo(connID string, ev models.Event) bool {
	c, ok := h.Clients[connID]
	if !ok {
		return false
	}
	h.send(c, ev)
	return true
}

// broadcastAll delivers an event to every connected party, so any
// screen can reflect live status.
func (h *Hub) broadcastAll(ev models.Event) {
	for _, c := range h.Clients {
		h.send(c, ev)
	}
}

// notifyOfficialQueue pushes the full queue, enriched with each
// citizen's rating history, to the official's connection.
func (h *Hub) notifyOfficialQueue() {
	officialID := h.Registry.OfficialConnID()
	if officialID == "" {
		return
	}

	entries := make([]models.QueueEntry, 0, h.Queue.Len())
	for _, connID := range h.Queue.Entries() {
		identity, ok := h.Registry.Lookup(connID)
		if !ok {
			continue
		}
		entry := models.QueueEntry{Identity: *identity}
		citizen, official, err := h.Storage.LastRatingsByMobile(identity.Mobile)
		if err != nil {
			log.Warn().Err(err).Str("mobile", identity.Mobile).Msg("rating lookup failed")
		} else {
			entry.LastCitizenRating = citizen
			entry.LastDMRating = official
		}
		entries = append(entries, entry)
	}

	h.sendTo(officialID, models.NewEvent(EvQueueUpdateOfficial, entries))
}

// rebroadcastQueue re-sends every queued citizen their current position
// and estimate. Read-only against the queue.
func (h *Hub) rebroadcastQueue() {
	for i, connID := range h.Queue.Entries() {
		h.sendTo(connID, models.NewEvent(EvQueueUpdate, models.QueueStatus{
			Position:             i + 1,
			EstimatedWaitMinutes: h.Queue.EstimatedWait(i + 1),
		}))
	}
}

// handleGrievanceFiled refreshes the official's grievance list, or
// falls back to the out-of-band notifier when the official is offline.
func (h *Hub) handleGrievanceFiled(g models.Grievance) {
	officialID := h.Registry.OfficialConnID()
	if officialID != "" {
		h.pushGrievances(officialID)
		return
	}
	if h.Notifier != nil {
		go h.Notifier.GrievanceFiled(g)
	}
}

// pushGrievances sends the full grievance list to one connection. A
// refresh signal, not a delta.
func (h *Hub) pushGrievances(connID string) {
	grievances, err := h.Storage.GetAllGrievances()
	if err != nil {
		log.Error().Err(err).Msg("could not load grievances")
		return
	}
	h.sendTo(connID, models.NewEvent(EvGrievanceUpdate, grievances))
}
