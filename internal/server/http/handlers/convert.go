package handlers

import (
	"github.com/polkiloo/gpsolutions/internal/domain/model"
	"github.com/polkiloo/gpsolutions/internal/server/http/dto"
)

func toTaskDTO(t model.AssignmentTask) dto.Task {
	out := dto.Task{ID: t.ID, WordCount: dto.FlexString(t.WordCount)}
	if t.File != nil {
		out.File = &dto.FileInfo{
			Name:      t.File.Name,
			Size:      t.File.Size,
			Extension: t.File.Extension,
			Estimated: t.File.Estimated,
		}
	}
	return out
}

func toTaskDTOs(tasks []model.AssignmentTask) []dto.Task {
	out := make([]dto.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskDTO(t))
	}
	return out
}

func fromTaskDTO(t dto.Task) model.AssignmentTask {
	out := model.AssignmentTask{ID: t.ID, WordCount: t.WordCount.String()}
	if t.File != nil {
		out.File = &model.FileRef{
			Name:      t.File.Name,
			Size:      t.File.Size,
			Extension: t.File.Extension,
			Estimated: t.File.Estimated,
		}
	}
	return out
}

func toAssignmentDTO(a model.SingleAssignment) dto.Assignment {
	out := dto.Assignment{
		ID:           a.ID,
		ProjectType:  a.ProjectType,
		Topic:        a.Topic,
		UrgencyType:  string(a.UrgencyType),
		UrgencyValue: dto.FlexString(a.UrgencyValue),
		Tasks:        toTaskDTOs(a.Tasks),
		SessionID:    a.SessionID,
	}
	if !a.CreatedAt.IsZero() {
		created := a.CreatedAt
		out.CreatedAt = &created
	}
	return out
}

func toAssignmentDTOs(list []model.SingleAssignment) []dto.Assignment {
	out := make([]dto.Assignment, 0, len(list))
	for _, a := range list {
		out = append(out, toAssignmentDTO(a))
	}
	return out
}

func fromAssignmentDTO(a dto.Assignment) model.SingleAssignment {
	tasks := make([]model.AssignmentTask, 0, len(a.Tasks))
	for _, t := range a.Tasks {
		tasks = append(tasks, fromTaskDTO(t))
	}
	return model.SingleAssignment{
		ID:           a.ID,
		ProjectType:  a.ProjectType,
		Topic:        a.Topic,
		UrgencyType:  model.UrgencyType(a.UrgencyType),
		UrgencyValue: a.UrgencyValue.String(),
		Tasks:        tasks,
	}
}

func toCartResponse(summary *model.CartSummary) dto.CartResponse {
	resp := dto.CartResponse{
		Assignments:        make([]dto.QuotedAssignment, 0, len(summary.Quotes)),
		TotalPrice:         summary.TotalPrice,
		StagedWordCount:    summary.StagedWordCount,
		TotalAssignedWords: summary.TotalAssignedWords,
		BillableWords:      summary.BillableWords,
	}
	for _, q := range summary.Quotes {
		resp.Assignments = append(resp.Assignments, dto.QuotedAssignment{
			Assignment: toAssignmentDTO(q.Assignment),
			Words:      q.Words,
			Multiplier: q.Multiplier,
			Price:      q.Price,
		})
	}
	return resp
}

func fromLineItemDTOs(items []dto.LineItem) []model.LineItem {
	out := make([]model.LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, model.LineItem{
			Name:            item.PriceData.ProductData.Name,
			Description:     item.PriceData.ProductData.Description,
			Currency:        item.PriceData.Currency,
			UnitAmountCents: item.PriceData.UnitAmount,
			Quantity:        item.Quantity,
		})
	}
	return out
}
