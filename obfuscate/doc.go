// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package obfuscate holds the placeholder transforms applied to proposal text
and vote choices before they are sent to the voting contract.

# Not Encryption

Nothing in this package provides confidentiality. The product copy talks
about homomorphically encrypted ballots; these functions only stand in for
that step until a real scheme is integrated. Anyone who sees the
transaction can recover the plaintext.

# Text

Proposal titles and descriptions are base64 encoded:

	encoded := obfuscate.ObfuscateText("Renewable Energy Initiative")
	plain, err := obfuscate.DeobfuscateText(encoded)

The round trip is lossless for every input.

# Choices

Vote choices go through the affine map 7x+13:

	obfuscate.ObfuscateChoice(1) // 20 (Yes)
	obfuscate.ObfuscateChoice(2) // 27 (No)
	obfuscate.ObfuscateChoice(3) // 34 (Abstain)

DeobfuscateChoice computes (y-13)/7 and rejects values outside the image
of the map.
*/
package obfuscate
