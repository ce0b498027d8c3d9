package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"taskboard/internal/core/model"
)

type BoardRepository interface {
	Create(board *model.Board) error
	Update(board *model.Board) error
	UpdateStatus(id, status string) error
	Delete(id string) error
	FindByID(id string) (*model.Board, error)
	// FindByDetails locates a board with identical title, priority,
	// checklist and due date; it backs the create-path duplicate probe.
	FindByDetails(title, priority string, checklist []string, dueDate *time.Time) (*model.Board, error)
	FindByWindow(start time.Time, status string) ([]*model.Board, error)
	// MarkOverdue sets completed=false on every board whose due date is
	// strictly earlier than cutoff, regardless of status.
	MarkOverdue(cutoff time.Time) error
	CountByPriority(priority string) (int64, error)
	CountByStatus(status string) (int64, error)
	// CountOverdueDone counts boards that are Done, past due and
	// already swept (completed=false).
	CountOverdueDone(now time.Time) (int64, error)
}

type MongoBoardRepository struct {
	collection *mongo.Collection
}

func NewMongoBoardRepository(db *mongo.Database) *MongoBoardRepository {
	return &MongoBoardRepository{
		collection: db.Collection("boards"),
	}
}

func (r *MongoBoardRepository) Create(board *model.Board) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, board)
	return err
}

func (r *MongoBoardRepository) Update(board *model.Board) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.ReplaceOne(ctx, bson.M{"id": board.ID}, board)
	return err
}

func (r *MongoBoardRepository) UpdateStatus(id, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	return err
}

func (r *MongoBoardRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	return err
}

func (r *MongoBoardRepository) FindByID(id string) (*model.Board, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var board model.Board
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&board)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &board, err
}

func (r *MongoBoardRepository) FindByDetails(title, priority string, checklist []string, dueDate *time.Time) (*model.Board, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"title":     title,
		"priority":  priority,
		"checklist": checklist,
		"duedate":   dueDate,
	}

	var board model.Board
	err := r.collection.FindOne(ctx, filter).Decode(&board)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &board, err
}

func (r *MongoBoardRepository) FindByWindow(start time.Time, status string) ([]*model.Board, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"createddate": bson.M{"$gte": start},
		"status":      status,
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var boards []*model.Board
	if err = cursor.All(ctx, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

func (r *MongoBoardRepository) MarkOverdue(cutoff time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.UpdateMany(ctx,
		bson.M{"duedate": bson.M{"$lt": cutoff}},
		bson.M{"$set": bson.M{"completed": false}},
	)
	return err
}

func (r *MongoBoardRepository) CountByPriority(priority string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{"priority": priority})
}

func (r *MongoBoardRepository) CountByStatus(status string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}

func (r *MongoBoardRepository) CountOverdueDone(now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status":    model.StatusDone,
		"duedate":   bson.M{"$lt": now},
		"completed": false,
	}
	return r.collection.CountDocuments(ctx, filter)
}
