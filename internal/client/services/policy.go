package services

import "github.com/dmitrijs2005/filekeeper/internal/client/models"

// Operation names a user-initiated action.
type Operation string

const (
	OpUpload          Operation = "upload"
	OpCreate          Operation = "create"
	OpDownload        Operation = "download"
	OpRename          Operation = "rename"
	OpDelete          Operation = "delete"
	OpRestore         Operation = "restore"
	OpDeletePermanent Operation = "delete_permanent"
)

// RefreshScope is which panels are reloaded after an operation.
type RefreshScope int

const (
	RefreshNone RefreshScope = iota
	RefreshTrash
	RefreshAll
)

// RefreshGate decides whether a decoded server reply triggers the reload.
type RefreshGate int

const (
	// GateAnyReply reloads after any decoded reply, success or not.
	GateAnyReply RefreshGate = iota
	// GateReplyOK reloads only after a 2xx reply.
	GateReplyOK
)

type RefreshPolicy struct {
	Scope RefreshScope
	Gate  RefreshGate
}

// RefreshPolicies maps each operation to its reload rule. Restore and
// permanent delete reload unconditionally while rename and delete are gated
// on the reply status; both behaviours are kept on purpose.
var RefreshPolicies = map[Operation]RefreshPolicy{
	OpUpload:          {Scope: RefreshAll, Gate: GateAnyReply},
	OpCreate:          {Scope: RefreshAll, Gate: GateReplyOK},
	OpDownload:        {Scope: RefreshNone},
	OpRename:          {Scope: RefreshAll, Gate: GateReplyOK},
	OpDelete:          {Scope: RefreshAll, Gate: GateReplyOK},
	OpRestore:         {Scope: RefreshAll, Gate: GateAnyReply},
	OpDeletePermanent: {Scope: RefreshTrash, Gate: GateAnyReply},
}

// scopeFor returns the panels to reload for op given reply.
func scopeFor(op Operation, reply models.ServerReply) RefreshScope {
	p, ok := RefreshPolicies[op]
	if !ok {
		return RefreshNone
	}
	if p.Gate == GateReplyOK && !reply.OK() {
		return RefreshNone
	}
	return p.Scope
}
