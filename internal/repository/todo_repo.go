package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/gearlane/recon-tracker/pkg/model"
)

// TodoRepository stores dealership to-dos.
type TodoRepository struct {
	client *firestore.Client
}

func NewTodoRepository(client *firestore.Client) *TodoRepository {
	return &TodoRepository{client: client}
}

func (r *TodoRepository) col(dealershipID string) *firestore.CollectionRef {
	return r.client.Collection("dealerships").Doc(dealershipID).Collection("todos")
}

// ListTodos loads to-dos, optionally restricted to one vehicle.
func (r *TodoRepository) ListTodos(ctx context.Context, dealershipID, vehicleID string) ([]model.Todo, error) {
	q := r.col(dealershipID).Query
	if vehicleID != "" {
		q = q.Where("vehicleId", "==", vehicleID)
	}
	iter := q.Documents(ctx)
	var todos []model.Todo
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate todos: %w", err)
		}
		var todo model.Todo
		if err := doc.DataTo(&todo); err != nil {
			return nil, fmt.Errorf("decode todo %s: %w", doc.Ref.ID, err)
		}
		if todo.ID == "" {
			todo.ID = doc.Ref.ID
		}
		todos = append(todos, todo)
	}
	return todos, nil
}

func (r *TodoRepository) SaveTodo(ctx context.Context, dealershipID string, todo model.Todo) error {
	if todo.ID == "" {
		return fmt.Errorf("todo id is required")
	}
	if _, err := r.col(dealershipID).Doc(todo.ID).Set(ctx, todo); err != nil {
		return fmt.Errorf("save todo %s: %w", todo.ID, err)
	}
	return nil
}

func (r *TodoRepository) DeleteTodo(ctx context.Context, dealershipID, id string) error {
	if _, err := r.col(dealershipID).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete todo %s: %w", id, err)
	}
	return nil
}
