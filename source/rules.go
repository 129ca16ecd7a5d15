package source

import "github.com/initram2002/random-quiz-regolamentari-c11/types"

// Rules returns the built-in partition map for the refereeing quiz: the 17
// Regole del Giuoco del Calcio plus the two cross-cutting regulatory
// partitions, the Regolamento associativo (ASS) and the Norme di
// Funzionamento degli Organi Tecnici (NFOT). Together the intervals cover
// question IDs 1 through 716.
//
// Returns:
//   - []types.Partition: Fresh copy of the 19-partition map
func Rules() []types.Partition {
	return []types.Partition{
		{Number: 1, Label: "Regola 1", Min: 1, Max: 43},
		{Number: 2, Label: "Regola 2", Min: 44, Max: 66},
		{Number: 3, Label: "Regola 3", Min: 67, Max: 115},
		{Number: 4, Label: "Regola 4", Min: 116, Max: 141},
		{Number: 5, Label: "Regola 5", Min: 142, Max: 182},
		{Number: 6, Label: "Regola 6", Min: 183, Max: 247},
		{Number: 7, Label: "Regola 7", Min: 248, Max: 270},
		{Number: 8, Label: "Regola 8", Min: 271, Max: 298},
		{Number: 9, Label: "Regola 9", Min: 299, Max: 308},
		{Number: 10, Label: "Regola 10", Min: 309, Max: 336},
		{Number: 11, Label: "Regola 11", Min: 337, Max: 366},
		{Number: 12, Label: "Regola 12", Min: 367, Max: 489},
		{Number: 13, Label: "Regola 13", Min: 490, Max: 525},
		{Number: 14, Label: "Regola 14", Min: 526, Max: 556},
		{Number: 15, Label: "Regola 15", Min: 557, Max: 582},
		{Number: 16, Label: "Regola 16", Min: 583, Max: 603},
		{Number: 17, Label: "Regola 17", Min: 604, Max: 621},
		{Number: 18, Label: "Regola ASS", Min: 622, Max: 690},
		{Number: 19, Label: "Regola NFOT", Min: 691, Max: 716},
	}
}

// FieldRules returns the restricted partition map containing only the 17
// Regole del Giuoco del Calcio, without the cross-cutting regulatory
// partitions. This is the mandatory set for subset-coverage sampling.
//
// Returns:
//   - []types.Partition: Fresh copy of the 17-partition map
func FieldRules() []types.Partition {
	return Rules()[:17]
}

// PreviousQuizIDs returns the exclusion set built from the three most
// recent quiz batteries. None of these question IDs may be selected again.
//
// Returns:
//   - types.IDSet: The 60 previously used question IDs
func PreviousQuizIDs() types.IDSet {
	return types.NewIDSet(
		// Quiz 1
		111, 25, 46, 676, 298, 537, 315, 511, 437, 604,
		148, 577, 223, 596, 258, 346, 126, 712, 308, 135,
		// Quiz 2
		569, 625, 491, 379, 35, 208, 107, 314, 117, 277,
		53, 146, 702, 527, 586, 266, 611, 359, 304, 692,
		// Quiz 3
		446, 264, 539, 206, 320, 29, 704, 686, 520, 141,
		350, 574, 145, 597, 286, 110, 306, 58, 610, 239,
	)
}
