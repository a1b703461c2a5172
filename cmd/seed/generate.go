package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/custview/custview/internal/model"
)

var (
	firstNames = []string{
		"Amara", "Bilal", "Chen", "Dana", "Emeka", "Freya", "Gustavo", "Hana",
		"Ivan", "Jia", "Kofi", "Lucia", "Mateo", "Nadia", "Omar", "Priya",
	}
	lastNames = []string{
		"Okafor", "Haddad", "Wei", "Novak", "Eze", "Larsen", "Pereira", "Sato",
		"Petrov", "Liu", "Mensah", "Rossi", "Garcia", "Karimi", "Farouk", "Iyer",
	}
	locations = []string{
		"Lagos", "Nairobi", "Oslo", "Pune", "Quito", "Lisbon", "Osaka",
		"Toronto", "Cairo", "Krakow", "Lima", "Austin",
	}
)

// seedWindow is how far back generated creation times reach.
const seedWindow = 90 * 24 * time.Hour

// generateCustomers builds n customers from rng with creation times in the
// window before now. The same seed always yields the same customers.
func generateCustomers(n int, rng *rand.Rand, now time.Time) []*model.Customer {
	customers := make([]*model.Customer, 0, n)
	for i := 0; i < n; i++ {
		offset := time.Duration(rng.Int63n(int64(seedWindow)))
		customers = append(customers, &model.Customer{
			CustomerName: firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
			Age:          18 + rng.Intn(63),
			Phone:        fmt.Sprintf("+1-555-%03d-%04d", rng.Intn(1000), rng.Intn(10000)),
			Location:     locations[rng.Intn(len(locations))],
			CreatedAt:    now.Add(-offset).Truncate(time.Second),
		})
	}
	return customers
}
