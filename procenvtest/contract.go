package procenvtest

// AllContracts returns every behavioral contract a procenv.Process must satisfy.
func AllContracts() []TestCase {
	const initialCapacity = 20

	contracts := make([]TestCase, 0, initialCapacity)

	contracts = append(contracts, coreContracts()...)
	contracts = append(contracts, streamContracts()...)
	contracts = append(contracts, signalContracts()...)
	contracts = append(contracts, exitContracts()...)

	return contracts
}
