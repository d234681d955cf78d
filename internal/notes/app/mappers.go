package app

import (
	"notablelists/internal/notes/domain/entities"
	"notablelists/internal/notes/ports/remote"
)

func toNoteRequest(n *entities.Note) remote.NoteRequest {
	return remote.NoteRequest{
		Title:       n.Title,
		Description: n.Description,
		Tag:         n.Tag,
		IsFinished:  n.IsFinished,
		Reminder:    n.Reminder,
		Checklist:   n.Checklist,
		Priority:    n.Priority,
		DeleteAt:    n.DeleteAt,
		AutoDelete:  n.AutoDelete,
	}
}

// noteFromResponse переносит серверные поля в заметку с локальным ключом key.
func noteFromResponse(key string, r *remote.NoteResponse, owner *int64) entities.Note {
	return entities.Note{
		ID:          key,
		RemoteID:    entities.Int64Ptr(r.NoteID),
		Title:       r.Title,
		Description: r.Description,
		Tag:         r.Tag,
		Priority:    r.Priority,
		IsFinished:  r.IsFinished,
		Reminder:    r.Reminder,
		Checklist:   r.Checklist,
		AutoDelete:  r.AutoDelete,
		DeleteAt:    r.DeleteAt,
		UserID:      owner,
	}
}

func sharedWithMeFromDTO(d remote.SharedNoteWithDetails) entities.SharedWithMe {
	return entities.SharedWithMe{
		SharedNoteID:  d.SharedNoteID,
		NoteID:        d.NoteID,
		Title:         d.NoteTitle,
		Description:   d.NoteDescription,
		OwnerUserID:   d.OwnerUserID,
		OwnerUsername: d.OwnerUsername,
		Tag:           d.Tag,
		IsFinished:    d.IsFinished,
		Reminder:      d.Reminder,
		Checklist:     d.Checklist,
		Priority:      d.Priority,
	}
}

func sharedByMeFromDTO(d remote.SharedNoteByMe) entities.SharedByMe {
	return entities.SharedByMe{
		SharedNoteID:   d.SharedNoteID,
		NoteID:         d.NoteID,
		NoteTitle:      d.NoteTitle,
		TargetUserID:   d.TargetUserID,
		TargetUsername: d.TargetUsername,
		Status:         entities.ShareStatus(d.Status),
	}
}

func friendFromUser(u remote.UserResponse) entities.Friend {
	return entities.Friend{UserID: u.UserID, Username: u.Username}
}
