package repository

// Factory describes access to the persistent domain repositories.
type Factory interface {
	Assignments() AssignmentRepository
	Checkouts() CheckoutRepository
	Sales() SalesRepository
}
