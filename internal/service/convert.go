package service

import (
	"github.com/ArtysFactory/proofy/internal/models"
	"github.com/ArtysFactory/proofy/internal/rights"
	"github.com/ArtysFactory/proofy/pkg/api"
)

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		Id:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func toAPIHolders(list []rights.Holder) []*api.Holder {
	out := make([]*api.Holder, len(list))
	for i, h := range list {
		out[i] = &api.Holder{Name: h.Name, Percentage: h.Percentage, Role: h.Role}
	}
	return out
}

func fromAPIHolders(list []*api.Holder) []rights.Holder {
	out := make([]rights.Holder, 0, len(list))
	for _, h := range list {
		if h == nil {
			continue
		}
		out = append(out, rights.Holder{Name: h.Name, Percentage: h.Percentage, Role: h.Role})
	}
	return out
}

func toAPIRights(p rights.Payload) *api.Rights {
	return &api.Rights{
		Authorship: &api.AuthorshipAllocation{
			MainHolderPercentage: p.Authorship.MainHolderPercentage,
			Authors:              toAPIHolders(p.Authorship.Authors),
			Composers:            toAPIHolders(p.Authorship.Composers),
			Publishers:           toAPIHolders(p.Authorship.Publishers),
		},
		NeighboringRights: &api.NeighboringRights{
			Producers: toAPIHolders(p.NeighboringRights.Producers),
			Labels:    toAPIHolders(p.NeighboringRights.Labels),
			Others:    toAPIHolders(p.NeighboringRights.Others),
		},
	}
}

// fromAPIRights converts a wire split. A missing authorship section leaves
// the main holder at 0%, which never reconciles on its own.
func fromAPIRights(r *api.Rights) rights.Payload {
	var p rights.Payload
	if a := r.Authorship; a != nil {
		p.Authorship = rights.AuthorshipAllocation{
			MainHolderPercentage: a.MainHolderPercentage,
			Authors:              fromAPIHolders(a.Authors),
			Composers:            fromAPIHolders(a.Composers),
			Publishers:           fromAPIHolders(a.Publishers),
		}
	}
	if n := r.NeighboringRights; n != nil {
		p.NeighboringRights = rights.NeighboringRightsAllocation{
			Producers: fromAPIHolders(n.Producers),
			Labels:    fromAPIHolders(n.Labels),
			Others:    fromAPIHolders(n.Others),
		}
	}
	return p
}

func fromAPIEdit(e *api.Edit) rights.Edit {
	return rights.Edit{
		Op:         rights.Op(e.Op),
		Category:   e.Category,
		Index:      e.Index,
		Field:      e.Field,
		Name:       e.Name,
		Percentage: e.Percentage,
		Role:       e.Role,
	}
}

func toAPIWork(w *models.Work) *api.Work {
	out := &api.Work{
		Id:           w.ID,
		PublicId:     w.PublicID,
		Title:        w.Title,
		ProjectType:  w.ProjectType,
		FileName:     w.FileName,
		FileHash:     w.FileHash,
		Description:  w.Description,
		RightsDigest: w.RightsDigest,
		AnchorStatus: string(w.AnchorStatus),
		AnchorTxHash: w.AnchorTxHash,
		CreatedAt:    w.CreatedAt,
	}
	if w.Rights != nil {
		out.Rights = toAPIRights(*w.Rights)
	}
	return out
}

func toAPIProof(w *models.Work, ownerName string) *api.Proof {
	out := &api.Proof{
		PublicId:         w.PublicID,
		Title:            w.Title,
		ProjectType:      w.ProjectType,
		FileHash:         w.FileHash,
		OwnerDisplayName: ownerName,
		RightsDigest:     w.RightsDigest,
		AnchorStatus:     string(w.AnchorStatus),
		AnchorTxHash:     w.AnchorTxHash,
		CreatedAt:        w.CreatedAt,
	}
	if w.Rights != nil {
		out.Rights = toAPIRights(*w.Rights)
	}
	return out
}
